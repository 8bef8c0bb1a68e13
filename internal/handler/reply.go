package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tglkwon/api.board.aquaco.work/internal/api"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils"
)

// replyTarget reads {textNo} and, when withReply is set, {replyNo}.
func replyTarget(r *http.Request, withReply bool) (domain.PostNo, domain.ReplyNo, error) {
	textNo, err := parseIntParam(chi.URLParam(r, "textNo"), "textNo")
	if err != nil {
		return 0, 0, err
	}
	if !withReply {
		return textNo, 0, nil
	}
	replyNo, err := parseIntParam(chi.URLParam(r, "replyNo"), "replyNo")
	if err != nil {
		return 0, 0, err
	}
	return textNo, replyNo, nil
}

func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	textNo, _, err := replyTarget(r, false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	replies, err := h.reply.List(r.Context(), textNo)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.NewReplyListResponse(replies))
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	textNo, _, err := replyTarget(r, false)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	var body api.ReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	no, err := h.reply.Create(r.Context(), subject, textNo, body.Reply)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.CreatedResponse{Success: true, No: no})
}

func (h *Handler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	textNo, replyNo, err := replyTarget(r, true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	var body api.ReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	if err := h.reply.Update(r.Context(), subject, textNo, replyNo, body.Reply); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.OK())
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	subject, err := caller(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}
	textNo, replyNo, err := replyTarget(r, true)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	if err := h.reply.Delete(r.Context(), subject, textNo, replyNo); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.OK())
}
