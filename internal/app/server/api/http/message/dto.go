package message

import "starauto/internal/domain/message"

type createInput struct {
	Body struct {
		Nom       string `json:"nom"`
		Email     string `json:"email"`
		Sujet     string `json:"sujet,omitempty"`
		Message   string `json:"message"`
		Telephone string `json:"telephone,omitempty"`
		Voiture   string `json:"voiture,omitempty" doc:"Id of the car the message is about"`
	}
}

type messageOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Success bool            `json:"success"`
	Data    message.Message `json:"data"`
}

type listInput struct{}

type listOutput struct {
	Body MessageListResponse
}

type MessageListResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Messages []message.Message `json:"messages"`
	NonLus   int               `json:"nonLus"`
}

// MessageMarkBody is optional: a PUT without a body marks the message read.
type MessageMarkBody struct {
	Lu *bool `json:"lu,omitempty" doc:"Defaults to true"`
}

type markInput struct {
	ID   string           `path:"id"`
	Body *MessageMarkBody `required:"false"`
}

type deleteInput struct {
	ID string `path:"id"`
}

type deleteOutput struct {
	Body MessageDeleteResponse
}

type MessageDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
