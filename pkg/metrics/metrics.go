// Package metrics define os contadores Prometheus da aplicação.
// A exposição em /metrics fica a cargo do cmd/api (promhttp).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsRegistered conta movimentações confirmadas, por tipo (Entrada/Saída).
	MovementsRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movimentos_registrados_total",
		Help: "Total de movimentações de estoque confirmadas, por tipo de operação.",
	}, []string{"tipo"})

	// LowStockAlerts conta alertas de estoque abaixo do mínimo emitidos após commit.
	LowStockAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "estoque_alertas_minimo_total",
		Help: "Total de alertas de estoque abaixo do mínimo.",
	})

	// MovementsRejected conta movimentações rejeitadas (validação, produto inexistente, estoque insuficiente).
	MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "estoque_movimentos_rejeitados_total",
		Help: "Total de movimentações rejeitadas, por motivo.",
	}, []string{"motivo"})
)
