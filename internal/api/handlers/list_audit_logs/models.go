package list_audit_logs

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AdminService/internal/service/audit/models"
)

// ToServiceRequest собирает запрос к журналу из query параметров
func ToServiceRequest(query url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{
		EntityType: query.Get("entityType"),
		Search:     query.Get("search"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"days", &req.Days},
		{"page", &req.Page},
		{"pageSize", &req.PageSize},
	}
	for _, p := range ints {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = v
	}

	return req, nil
}
