package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pqautoexpert/suite360-movil/internal/application/billing"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Ledger: validación local de líneas, mutación por índice y totales derivados.
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_AgregarValida(t *testing.T) {
	l := billing.NewLedger()

	require.NoError(t, l.Agregar(item(1, "10", "0")))
	assert.Equal(t, 1, l.Len())
}

func TestLedger_AgregarRechazaDescripcionVacia(t *testing.T) {
	l := billing.NewLedger()
	it := item(1, "10", "0")
	it.Descripcion = ""

	err := l.Agregar(it)
	assert.ErrorIs(t, err, domain.ErrValidacion, "línea sin descripción debe fallar validación")
	assert.Equal(t, 0, l.Len(), "la línea rechazada no debe entrar al ledger")
}

func TestLedger_AgregarRechazaCantidadCero(t *testing.T) {
	l := billing.NewLedger()
	err := l.Agregar(item(0, "10", "0"))
	assert.ErrorIs(t, err, domain.ErrValidacion, "cantidad mínima es 1")
}

func TestLedger_AgregarRechazaPrecioNegativo(t *testing.T) {
	l := billing.NewLedger()
	err := l.Agregar(item(1, "-5", "0"))
	assert.ErrorIs(t, err, domain.ErrValidacion)
}

// El descuento de línea se acota a cantidad×precio, no al precio unitario:
// 3×10 admite un descuento de 25.
func TestLedger_DescuentoAcotadoPorCantidadPorPrecio(t *testing.T) {
	l := billing.NewLedger()

	require.NoError(t, l.Agregar(item(3, "10", "25")), "descuento 25 ≤ 3×10 debe pasar")
	assert.ErrorIs(t, l.Agregar(item(3, "10", "30.01")), domain.ErrValidacion,
		"descuento mayor a cantidad×precio debe fallar")
	assert.ErrorIs(t, l.Agregar(item(3, "10", "-1")), domain.ErrValidacion,
		"descuento negativo debe fallar")
}

// NewLedger no valida las líneas iniciales: son reflejos del servidor
// (la línea sembrada de una factura sin detalles no tiene descripción).
func TestLedger_LineasInicialesSinValidar(t *testing.T) {
	l := billing.NewLedger(entity.ItemFactura{Cantidad: 1, Precio: dec("75.50")})
	assert.Equal(t, 1, l.Len())
}

func TestLedger_EliminarCorreIndices(t *testing.T) {
	a, b, c := item(1, "1", "0"), item(1, "2", "0"), item(1, "3", "0")
	l := billing.NewLedger(a, b, c)

	require.NoError(t, l.Eliminar(1))

	items := l.Items()
	require.Len(t, items, 2)
	assert.True(t, dec("1").Equal(items[0].Precio))
	assert.True(t, dec("3").Equal(items[1].Precio), "la tercera línea corre al índice 1")
}

func TestLedger_IndiceFueraDeRango(t *testing.T) {
	l := billing.NewLedger(item(1, "1", "0"))

	assert.ErrorIs(t, l.Eliminar(-1), domain.ErrIndiceInvalido)
	assert.ErrorIs(t, l.Eliminar(1), domain.ErrIndiceInvalido)
	assert.ErrorIs(t, l.ActualizarPrecio(5, dec("9")), domain.ErrIndiceInvalido)
}

// Cada actualización de campo se refleja en los totales sin recalcular nada
// a mano: el total de línea es vista derivada.
func TestLedger_ActualizarCampoRecalculaTotales(t *testing.T) {
	l := billing.NewLedger(item(1, "100", "0"))

	require.NoError(t, l.ActualizarCantidad(0, 2))
	require.NoError(t, l.ActualizarDescuento(0, dec("50")))

	// base = 2×100 − 50 = 150 → 127.5 / 22.5
	totales := l.Totales(decimal.Zero)
	assert.True(t, dec("127.5").Equal(totales.Subtotal), "subtotal: esperado 127.5, obtuvo %s", totales.Subtotal)
	assert.True(t, dec("22.5").Equal(totales.IVA), "iva: esperado 22.5, obtuvo %s", totales.IVA)
	assert.True(t, dec("150").Equal(totales.Total))
}

func TestLedger_ActualizarCamposDeTexto(t *testing.T) {
	l := billing.NewLedger(item(1, "10", "0"))

	require.NoError(t, l.ActualizarDescripcion(0, "Cambio de aceite"))
	require.NoError(t, l.ActualizarServicio(0, "Auto Servicios"))
	require.NoError(t, l.ActualizarSubservicio(0, "Mantenimiento"))

	it := l.Items()[0]
	assert.Equal(t, "Cambio de aceite", it.Descripcion)
	assert.Equal(t, "Auto Servicios", it.Servicio)
	assert.Equal(t, "Mantenimiento", it.Subservicio)
}

// Items devuelve una copia: mutarla no toca el ledger.
func TestLedger_ItemsEsCopia(t *testing.T) {
	l := billing.NewLedger(item(1, "10", "0"))

	items := l.Items()
	items[0].Precio = dec("999")

	assert.True(t, dec("10").Equal(l.Items()[0].Precio), "mutar la copia no debe afectar al ledger")
}
