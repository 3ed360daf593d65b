package handler

import (
	"credo-app-go/internal/domain/recognition"
	"credo-app-go/internal/domain/stats"
	"credo-app-go/internal/domain/team"
	"credo-app-go/internal/notify"
	"credo-app-go/pkg/logger"
)

type Handlers struct {
	recognitions *recognition.Service
	team         *team.Service
	stats        *stats.Service
	hub          *notify.Hub
	log          logger.Logger
}

func New(recognitions *recognition.Service, teamSvc *team.Service, statsSvc *stats.Service, hub *notify.Hub, log logger.Logger) *Handlers {
	return &Handlers{
		recognitions: recognitions,
		team:         teamSvc,
		stats:        statsSvc,
		hub:          hub,
		log:          log,
	}
}
