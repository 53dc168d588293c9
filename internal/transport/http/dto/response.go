package dto

// Response — единый конверт ответа API.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func NewSuccess(message string, data any) Response {
	return Response{Status: "success", Message: message, Data: data}
}

func NewError(message string) Response {
	return Response{Status: "error", Message: message}
}

// Meta — метаданные пагинации списков.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewMeta(page, perPage int, total int64) Meta {
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return Meta{Page: page, PerPage: perPage, Total: total, TotalPages: pages}
}
