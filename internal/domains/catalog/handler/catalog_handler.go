package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/domains/catalog/model"
	"bookshelf-api/internal/domains/catalog/service"
	"bookshelf-api/internal/shared/response"
)

// Greeting is the body of GET /.
const Greeting = "Hello Technigo!"

type CatalogHandler struct {
	service service.ServiceInterface
}

func NewCatalogHandler(svc service.ServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// GET /
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) Root(c *gin.Context) {
	response.Text(c, http.StatusOK, Greeting)
}

// ════════════════════════════════════════════════════════════════
// GET /authors
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) ListAuthors(c *gin.Context) {
	authors, err := h.service.ListAuthors(c.Request.Context())
	if err != nil {
		h.fail(c, "list_authors", err)
		return
	}
	response.JSON(c, http.StatusOK, authors)
}

// ════════════════════════════════════════════════════════════════
// GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) GetAuthor(c *gin.Context) {
	a, err := h.service.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get_author", err)
		return
	}
	response.JSON(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// GET /authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) ListAuthorBooks(c *gin.Context) {
	books, err := h.service.ListAuthorBooks(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "list_author_books", err)
		return
	}
	response.JSON(c, http.StatusOK, books)
}

// ════════════════════════════════════════════════════════════════
// GET /books
// ════════════════════════════════════════════════════════════════

func (h *CatalogHandler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		h.fail(c, "list_books", err)
		return
	}
	response.JSON(c, http.StatusOK, books)
}

// fail maps lookup misses to the 404 body and everything else to a bare 500.
func (h *CatalogHandler) fail(c *gin.Context, op string, err error) {
	if model.ToHTTPStatus(err) == http.StatusNotFound {
		log.Debug().
			Str("request_id", c.GetString("request_id")).
			Str("op", op).
			Err(err).
			Msg("Author lookup missed")
		response.NotFound(c, model.NotFoundMessage)
		return
	}

	log.Error().
		Str("request_id", c.GetString("request_id")).
		Str("op", op).
		Err(err).
		Msg("Store query failed")
	_ = c.Error(err)
	response.InternalServerError(c)
}
