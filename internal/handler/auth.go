package handler

import (
	"net/http"

	"github.com/tglkwon/api.board.aquaco.work/internal/api"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	reg := domain.Registration{
		Credentials: domain.Credentials{Id: body.Id, Password: body.Password},
		Nickname:    body.Nickname,
	}
	if err := h.auth.Register(r.Context(), reg); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.OK())
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	token, err := h.auth.Login(r.Context(), domain.Credentials{Id: body.Id, Password: body.Password})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, r, err)
		return
	}

	utils.WriteJSON(w, api.LoginResponse{Success: true, Token: token})
}
