package message

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "messages-create",
		Method:        http.MethodPost,
		Path:          "/api/messages",
		Summary:       "Форма обратной связи",
		Tags:          []string{"messages"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.mw.Public,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "messages-list",
		Method:      http.MethodGet,
		Path:        "/api/messages",
		Summary:     "Входящие сообщения",
		Description: "All messages newest first, with the number of unread ones",
		Tags:        []string{"messages"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) markOp() huma.Operation {
	return huma.Operation{
		OperationID: "messages-mark",
		Method:      http.MethodPut,
		Path:        "/api/messages/{id}",
		Summary:     "Отметить прочитанным",
		Tags:        []string{"messages"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "messages-delete",
		Method:      http.MethodDelete,
		Path:        "/api/messages/{id}",
		Summary:     "Удалить сообщение",
		Tags:        []string{"messages"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}
