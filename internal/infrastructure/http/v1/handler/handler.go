package handler

import (
	"github.com/VinciYan/tileserv/internal/usecase"
)

type Handler struct {
	tileUseCase *usecase.TileUseCase
}

func NewHandler(uc *usecase.TileUseCase) *Handler {
	return &Handler{
		tileUseCase: uc,
	}
}
