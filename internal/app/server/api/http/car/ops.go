package car

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "cars-list",
		Method:      http.MethodGet,
		Path:        "/api/cars",
		Summary:     "Каталог автомобилей",
		Description: "Filters by brand, year, price range and free text; newest first unless sort is set",
		Tags:        []string{"cars"},
		Middlewares: h.mw.Public,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "cars-get",
		Method:      http.MethodGet,
		Path:        "/api/cars/{id}",
		Summary:     "Автомобиль по id",
		Tags:        []string{"cars"},
		Middlewares: h.mw.Public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "cars-create",
		Method:        http.MethodPost,
		Path:          "/api/cars",
		Summary:       "Добавить автомобиль",
		Tags:          []string{"cars"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.mw.Admin,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "cars-update",
		Method:      http.MethodPut,
		Path:        "/api/cars/{id}",
		Summary:     "Изменить автомобиль",
		Tags:        []string{"cars"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "cars-delete",
		Method:      http.MethodDelete,
		Path:        "/api/cars/{id}",
		Summary:     "Удалить автомобиль",
		Tags:        []string{"cars"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}
