package changeset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_UnmarshalPreservesOrder(t *testing.T) {
	var obj Object
	err := json.Unmarshal([]byte(`{"zeta":1,"alpha":{"b":[true,null],"a":"x"},"mid":"m"}`), &obj)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	nested, ok := obj.Lookup("alpha").AsObject()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, nested.Keys())

	items, ok := nested.Lookup("b").AsArray()
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, KindBool, items[0].Kind())
	assert.Equal(t, KindNull, items[1].Kind())

	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":{"b":[true,null],"a":"x"},"mid":"m"}`, string(raw))
}

func TestObject_UnmarshalRejectsNonObject(t *testing.T) {
	var obj Object
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &obj))
}

func TestObject_ScanNull(t *testing.T) {
	var obj Object
	require.NoError(t, obj.Scan(nil))
	assert.Equal(t, 0, obj.Len())

	raw, err := obj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

func TestObjectOf_Struct(t *testing.T) {
	type vehicle struct {
		Name     string   `json:"name"`
		Seats    int      `json:"seats"`
		Features []string `json:"features"`
		Notes    *string  `json:"notes"`
	}

	obj, err := ObjectOf(vehicle{Name: "V-Class", Seats: 7, Features: []string{"wifi"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "seats", "features", "notes"}, obj.Keys())
	assert.True(t, Equal(Number(7), obj.Lookup("seats")))
	assert.Equal(t, KindNull, obj.Lookup("notes").Kind())
	assert.True(t, Equal(Array(String("wifi")), obj.Lookup("features")))
}

func TestObjectOf_NotAnObject(t *testing.T) {
	_, err := ObjectOf([]int{1, 2})
	assert.Error(t, err)
}

func TestObjectFromMap_SortedKeys(t *testing.T) {
	obj, err := ObjectFromMap(map[string]interface{}{
		"b": 2,
		"a": "one",
		"c": map[string]interface{}{"nested": true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
	assert.Equal(t, KindObject, obj.Lookup("c").Kind())
}

func TestEqual_KindsMustMatch(t *testing.T) {
	assert.False(t, Equal(Number(1), String("1")))
	assert.False(t, Equal(Null(), Missing()))
	assert.False(t, Equal(Bool(false), Null()))
	assert.True(t, Equal(Missing(), Missing()))
	assert.False(t, Equal(
		Nested(NewObject(F("a", Number(1)))),
		Nested(NewObject(F("a", Number(1)), F("b", Number(2)))),
	))
}

func TestObject_SetReplacesInPlace(t *testing.T) {
	obj := NewObject(F("a", Number(1)), F("b", Number(2)))
	obj.Set("a", Number(3))

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	assert.True(t, Equal(Number(3), obj.Lookup("a")))

	obj.Delete("a")
	assert.Equal(t, []string{"b"}, obj.Keys())
}
