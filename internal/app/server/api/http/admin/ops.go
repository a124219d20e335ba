package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-stats",
		Method:      http.MethodGet,
		Path:        "/api/admin/stats",
		Summary:     "Dashboard counters",
		Tags:        []string{"admin"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) storeOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-store",
		Method:      http.MethodGet,
		Path:        "/api/admin/store",
		Summary:     "Current document store mode",
		Tags:        []string{"admin"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) reconfigureOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-store-reconfigure",
		Method:      http.MethodPost,
		Path:        "/api/admin/store/reconfigure",
		Summary:     "Re-read database connectivity and switch store mode",
		Description: "The JSON file and the database hold separate data; run `ctl db push` or `ctl db pull` before switching if records must carry over.",
		Tags:        []string{"admin"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}
