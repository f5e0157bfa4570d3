package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps Page*Size and Page+1 well inside int.
	MaxPage = 1_000_000
)

// Query is the page/size/sort triple bound from list endpoints.
type Query struct {
	Page int    `form:"page,default=0" json:"page" validate:"gte=0,lte=1000000"`
	Size int    `form:"size,default=20" json:"size" validate:"gte=1,lte=100"`
	Sort string `form:"sort" json:"sort"`
}

// Request is a resolved page request handed to repositories.
type Request struct {
	Page   int
	Size   int
	Orders []Order
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

func NewRequest(q Query, spec SortSpec) Request {
	return Request{
		Page:   q.Page,
		Size:   q.Size,
		Orders: spec.Parse(q.Sort),
	}
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         req.Page == 0,
		Last:          req.Page+1 >= totalPages,
	}
}

// Map converts the content of a page, keeping its metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}
	return Page[U]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
	}
}
