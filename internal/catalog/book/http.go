package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libroteca/api/internal/platform/request"
	"github.com/libroteca/api/internal/platform/respond"
	"github.com/libroteca/api/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/search", handler.searchBooks)
	router.Post("/", handler.createBook)
	router.Get("/{id}", handler.getBook)
	router.Put("/{id}", handler.updateBook)
	router.Delete("/{id}", handler.deleteBook)
}

func (handler *Handler) searchBooks(writer http.ResponseWriter, request *http.Request) {
	params, err := ParseSearchParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	books, total, err := handler.service.SearchBooks(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if books == nil {
		books = []*Book{}
	}
	respond.Paginated(writer, books, pagination.NewMeta(params.Page.Page, params.Page.Limit, total))
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, book)
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateBook(request.Context(), &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")

	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateBook(request.Context(), bookID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.ID(request, "id")

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
