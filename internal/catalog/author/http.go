package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/libroteca/api/internal/platform/request"
	"github.com/libroteca/api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAuthors)
	router.Post("/", handler.createAuthor)
	router.Get("/{id}", handler.getAuthor)
	router.Put("/{id}", handler.updateAuthor)
	router.Delete("/{id}", handler.deleteAuthor)
	router.Get("/{id}/stats", handler.getAuthorStats)
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.ListAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if authors == nil {
		authors = []*Author{}
	}
	respond.OK(writer, authors)
}

func (handler *Handler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID := requestutil.ID(request, "id")

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *Handler) getAuthorStats(writer http.ResponseWriter, request *http.Request) {
	authorID := requestutil.ID(request, "id")

	stats, err := handler.service.GetStats(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID := requestutil.ID(request, "id")

	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateAuthor(request.Context(), authorID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID := requestutil.ID(request, "id")

	if err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
