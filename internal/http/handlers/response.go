package handlers

import "github.com/sloguard/server/api"

func NewResponse(messages ...string) api.Response {
	return api.Response{
		Messages: messages,
	}
}
