package billing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pqautoexpert/suite360-movil/internal/application/dto"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// FacturaAPI puerto hacia los endpoints de factura.
type FacturaAPI interface {
	FacturasPendientes(ctx context.Context) ([]entity.FacturaPendiente, error)
	Establecimientos(ctx context.Context) ([]entity.Establecimiento, error)
	TraerFactura(ctx context.Context, idFactura int) (*dto.TraerFacturaResponse, error)
	FinalizarFactura(ctx context.Context, idFactura int, in dto.FinalizarFacturaRequest) error
}

// BorradorFactura borrador de una factura pendiente de emisión. Es propiedad
// exclusiva de la sesión de pantalla hasta el envío; tras finalizar, la copia
// local queda como reflejo de solo lectura.
type BorradorFactura struct {
	ID                int
	Cliente           entity.ClienteFactura
	Ledger            *Ledger
	Observacion       string
	FormaPago         string
	DescuentoTotal    decimal.Decimal
	IDEstablecimiento *int

	emitida bool
}

// Emitida reporta si la factura ya fue enviada al servidor.
func (b *BorradorFactura) Emitida() bool { return b.emitida }

// Totales totales vigentes del borrador, recalculados desde el ledger.
func (b *BorradorFactura) Totales() entity.Totales {
	return b.Ledger.Totales(b.DescuentoTotal)
}

// FacturaUseCase carga y finaliza facturas pendientes.
type FacturaUseCase struct {
	api FacturaAPI
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(api FacturaAPI) *FacturaUseCase {
	return &FacturaUseCase{api: api}
}

// Pendientes facturas generadas pero aún no emitidas.
func (uc *FacturaUseCase) Pendientes(ctx context.Context) ([]entity.FacturaPendiente, error) {
	facturas, err := uc.api.FacturasPendientes(ctx)
	if err != nil {
		return nil, fmt.Errorf("factura: pendientes: %w", err)
	}
	return facturas, nil
}

// Establecimientos puntos de emisión disponibles.
func (uc *FacturaUseCase) Establecimientos(ctx context.Context) ([]entity.Establecimiento, error) {
	ests, err := uc.api.Establecimientos(ctx)
	if err != nil {
		return nil, fmt.Errorf("factura: establecimientos: %w", err)
	}
	return ests, nil
}

// Cargar trae la factura y arma el borrador. Una factura sin detalles siembra
// una sola línea {cantidad 1, precio = total de la cabecera, sin descuento}
// para que el operador la desglose.
func (uc *FacturaUseCase) Cargar(ctx context.Context, idFactura int) (*BorradorFactura, error) {
	resp, err := uc.api.TraerFactura(ctx, idFactura)
	if err != nil {
		return nil, fmt.Errorf("factura: cargar %d: %w", idFactura, err)
	}
	f := resp.Factura

	cliente := entity.ClienteFactura{
		Identificacion:     f.Identificacion,
		TipoIdentificacion: f.TipoIdentificacion,
		RazonSocial:        f.RazonSocial,
		Direccion:          f.Direccion,
		Telefono:           f.Telefono,
		Correo:             f.Correo,
	}
	if cliente.TipoIdentificacion == "" {
		cliente.TipoIdentificacion = "CEDULA"
	}

	formaPago := f.FormaPago
	if formaPago == "" {
		formaPago = entity.PagoEfectivo
	}

	var items []entity.ItemFactura
	if len(resp.Detalles) > 0 {
		for _, d := range resp.Detalles {
			items = append(items, entity.ItemFactura{
				Servicio:    d.Servicio,
				Subservicio: d.Subservicio,
				Descripcion: d.Descripcion,
				Cantidad:    d.Cantidad.IntPart(),
				Precio:      d.PrecioUnit,
				Descuento:   d.Descuento,
			})
		}
	} else {
		items = []entity.ItemFactura{{
			Cantidad: 1,
			Precio:   f.Total,
		}}
	}

	return &BorradorFactura{
		ID:          idFactura,
		Cliente:     cliente,
		Ledger:      NewLedger(items...),
		Observacion: f.Observacion,
		FormaPago:   formaPago,
	}, nil
}

// Finalizar emite la factura: totales de la calculadora (partición 85/15),
// estado SRI aprobada y las líneas vigentes del ledger. Paso terminal: tras el
// ok el borrador queda emitido y rechaza otro envío.
func (uc *FacturaUseCase) Finalizar(ctx context.Context, b *BorradorFactura) error {
	if b == nil || b.Ledger == nil {
		return domain.ErrValidacion
	}
	if b.emitida {
		return domain.ErrDocumentoEmitido
	}

	totales := b.Totales()
	items := b.Ledger.Items()
	req := dto.FinalizarFacturaRequest{
		IDEstablecimiento:  b.IDEstablecimiento,
		Identificacion:     b.Cliente.Identificacion,
		TipoIdentificacion: b.Cliente.TipoIdentificacion,
		RazonSocial:        b.Cliente.RazonSocial,
		Direccion:          b.Cliente.Direccion,
		Telefono:           b.Cliente.Telefono,
		Correo:             b.Cliente.Correo,
		Observacion:        b.Observacion,
		FormaPago:          b.FormaPago,
		Subtotal:           totales.Subtotal,
		IVA:                totales.IVA,
		DescuentoTotal:     b.DescuentoTotal,
		Total:              totales.Total,
		EstadoSRI:          entity.EstadoSRIAprobada,
		Items:              make([]dto.ItemFacturaDTO, 0, len(items)),
	}
	for _, item := range items {
		req.Items = append(req.Items, dto.ItemFacturaDTO{
			Servicio:    item.Servicio,
			Subservicio: item.Subservicio,
			Descripcion: item.Descripcion,
			Cantidad:    item.Cantidad,
			Precio:      item.Precio,
			Descuento:   item.Descuento,
		})
	}

	if err := uc.api.FinalizarFactura(ctx, b.ID, req); err != nil {
		// El borrador queda intacto: el operador corrige y reintenta
		return fmt.Errorf("factura: finalizar %d: %w", b.ID, err)
	}
	b.emitida = true
	return nil
}
