package presenter

// Presenter projeta um registro persistido (R) na sua forma pública (T).
// Cada entidade tem a sua própria instância; não há comportamento compartilhado
// além do discriminador fixo.
type Presenter[R any, T any] interface {
	Object() string
	Present(record R) T
	PresentList(records []R) []T
}

type funcPresenter[R any, T any] struct {
	object string
	fn     func(object string, record R) T
}

// New cria um Presenter a partir de uma função de mapeamento. A função recebe o
// discriminador para gravá-lo no campo "object" da resposta.
func New[R any, T any](object string, fn func(object string, record R) T) Presenter[R, T] {
	if object == "" {
		panic("presenter: discriminator cannot be empty")
	}
	if fn == nil {
		panic("presenter: mapping function cannot be nil")
	}
	return &funcPresenter[R, T]{object: object, fn: fn}
}

func (p *funcPresenter[R, T]) Object() string {
	return p.object
}

func (p *funcPresenter[R, T]) Present(record R) T {
	return p.fn(p.object, record)
}

// PresentList sempre devolve uma fatia nova (nunca nil), para que listas vazias
// sejam serializadas como [] e não null.
func (p *funcPresenter[R, T]) PresentList(records []R) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = p.fn(p.object, r)
	}
	return out
}

// ListResponse envelopa uma página de itens já apresentados.
type ListResponse[T any] struct {
	Object string `json:"object"`
	Items  []T    `json:"items"`
	Page   int    `json:"page"`
	Size   int    `json:"size"`
}

// List apresenta uma página de registros dentro do envelope "list".
func List[R any, T any](p Presenter[R, T], records []R, page, size int) ListResponse[T] {
	return ListResponse[T]{
		Object: "list",
		Items:  p.PresentList(records),
		Page:   page,
		Size:   size,
	}
}
