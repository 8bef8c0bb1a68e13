package handler

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tglkwon/api.board.aquaco.work/internal/api"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils"
)

const default_page int = 1

// pageFromQuery falls back to the first page for a missing, non-numeric or
// non-positive page.
func pageFromQuery(r *http.Request) int {
	pageQuery := r.URL.Query().Get("page")
	if pageQuery == "" {
		return default_page
	}
	page, err := parseIntParam(pageQuery, "page")
	if err != nil || page < 1 || page > math.MaxInt32 {
		return default_page
	}
	return int(page)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.post.List(r.Context(), pageFromQuery(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.NewPostListResponse(page))
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	no, err := parseIntParam(chi.URLParam(r, "no"), "no")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	post, err := h.post.Get(r.Context(), domain.PostNo(no))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.NewPostResponse(post))
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	var body api.PostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	no, err := h.post.Create(r.Context(), subject, body.Title, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.CreatedResponse{Success: true, No: no})
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	no, err := parseIntParam(chi.URLParam(r, "no"), "no")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	var body api.PostRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	data := domain.PostUpdateData{Title: body.Title, Body: body.Body}
	if err := h.post.Update(r.Context(), subject, domain.PostNo(no), data); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.OK())
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	no, err := parseIntParam(chi.URLParam(r, "no"), "no")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	if err := h.post.Delete(r.Context(), subject, domain.PostNo(no)); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.OK())
}
