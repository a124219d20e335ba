package favorite

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-list",
		Method:      http.MethodGet,
		Path:        "/api/favorites",
		Summary:     "Избранные автомобили",
		Tags:        []string{"favorites"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-add",
		Method:      http.MethodPost,
		Path:        "/api/favorites/{carId}",
		Summary:     "Добавить в избранное",
		Tags:        []string{"favorites"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-remove",
		Method:      http.MethodDelete,
		Path:        "/api/favorites/{carId}",
		Summary:     "Убрать из избранного",
		Tags:        []string{"favorites"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}

func (h *Handler) checkOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-check",
		Method:      http.MethodGet,
		Path:        "/api/favorites/check/{carId}",
		Summary:     "Проверить, в избранном ли автомобиль",
		Tags:        []string{"favorites"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}
