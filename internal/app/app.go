package app

import (
	"fulfillment/internal/handlers/rest/calendar_day_put"
	"fulfillment/internal/handlers/rest/calendar_get"
	"fulfillment/internal/handlers/rest/calendar_unavailable_post"
	"fulfillment/internal/handlers/rest/production_override_put"
	"fulfillment/internal/handlers/rest/schedule_post"
	"fulfillment/internal/handlers/rest/schedules_get"
	orderService "fulfillment/internal/service/order"
	"fulfillment/pkg/background"
)

type Application struct {
	ServiceScheduling ServiceScheduling
	ServiceCalendar   ServiceCalendar
	ServiceProduction ServiceProduction
	BackgroundWorkers *background.Worker
}

type ServiceScheduling interface {
	schedule_post.Service
	schedules_get.Service
}

type ServiceCalendar interface {
	calendar_get.Service
	calendar_day_put.Service
	calendar_unavailable_post.Service
}

type ServiceProduction interface {
	production_override_put.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
