// Package domain holds analytics events, aggregates and the sink contract
package domain

import (
	"context"
	"time"
)

// TurnEvent is one scored turn as recorded for analytics
type TurnEvent struct {
	At            time.Time
	SessionID     string
	Domain        string
	Overall       float64
	Communication float64
	Technical     float64
	Clarity       float64
	Fillers       int
	Degraded      bool
}

// DomainStat aggregates turns of one domain
type DomainStat struct {
	Domain           string  `json:"domain" example:"software"`
	Turns            uint64  `json:"turns" example:"42"`
	AvgOverall       float64 `json:"avg_overall" example:"0.63"`
	AvgCommunication float64 `json:"avg_communication" example:"0.71"`
	AvgTechnical     float64 `json:"avg_technical" example:"0.55"`
	AvgFillers       float64 `json:"avg_fillers" example:"2.4"`
}

// DomainsOutput is the aggregate listing
type DomainsOutput struct {
	Since   time.Time    `json:"since"`
	Domains []DomainStat `json:"domains"`
}

// Sink accepts turn events without blocking the caller
type Sink interface {
	Record(ctx context.Context, ev TurnEvent)
}

// ServicePort is consumed by handlers
type ServicePort interface {
	ByDomain(ctx context.Context, days int) (DomainsOutput, error)
}
