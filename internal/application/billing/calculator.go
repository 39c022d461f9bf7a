package billing

import (
	"github.com/shopspring/decimal"

	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// Partición de la base de cada línea entre subtotal e IVA. El negocio reparte
// la base 85/15 en lugar de calcular el IVA como subtotal×tasa; equivale a
// des-incluir un IVA del 15% pero con otra ruta de redondeo, y se reproduce
// tal cual porque cambiarla altera la salida financiera.
var (
	porcionSubtotal = decimal.NewFromFloat(0.85)
	porcionIVA      = decimal.NewFromFloat(0.15)
)

// CalcularTotales función pura: ledger + descuento de documento → totales
// segmentados por impuesto. Decimales exactos, sin redondeo por línea; el
// formateo a dos decimales es presentación, no cálculo.
//
// Lista vacía produce ceros. Un total negativo se devuelve sin clamp: el
// descuento de documento puede superar la suma de las bases y eso es decisión
// del operador, no de la calculadora.
func CalcularTotales(items []entity.ItemFactura, descuentoTotal decimal.Decimal) entity.Totales {
	var subtotal, iva decimal.Decimal
	for _, item := range items {
		base := item.Base()
		subtotal = subtotal.Add(base.Mul(porcionSubtotal))
		iva = iva.Add(base.Mul(porcionIVA))
	}
	return entity.Totales{
		Subtotal: subtotal,
		IVA:      iva,
		Total:    subtotal.Add(iva).Sub(descuentoTotal),
	}
}
