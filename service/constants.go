package service

const (
	DefaultInflationRate = 0.06 // 6% anual

	// Tasa registrada cuando la meta no crece con la inflación
	ExemptInflationRate = 0.0

	DefaultExemptionRule = `category == "debt_reduction"`

	// Límite de costo para evaluar reglas CEL
	policyCostLimit = 100_000
)
