// Package catalogo resuelve el árbol servicio → subservicio con el que se
// arman las líneas de proformas y facturas. Es data de referencia de solo
// lectura: se carga una vez por sesión y se cachea.
package catalogo

import (
	"context"
	"fmt"

	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
)

// API puerto hacia los endpoints del catálogo.
type API interface {
	Servicios(ctx context.Context) ([]entity.Servicio, error)
	Subservicios(ctx context.Context, idServicio int) ([]entity.Subservicio, error)
}

// Resolver cataloga servicios y subservicios con cache por sesión.
// No es seguro para uso concurrente: la pantalla es mono-hilo.
type Resolver struct {
	api API

	servicios       []entity.Servicio
	subservicios    map[int][]entity.Subservicio
	seleccionado    *entity.Servicio
	subSeleccionado *entity.Subservicio
}

// New construye el resolver.
func New(api API) *Resolver {
	return &Resolver{
		api:          api,
		subservicios: make(map[int][]entity.Subservicio),
	}
}

// Servicios lista de primer nivel; la primera llamada va a la red, las
// siguientes salen del cache.
func (r *Resolver) Servicios(ctx context.Context) ([]entity.Servicio, error) {
	if r.servicios != nil {
		return r.servicios, nil
	}
	servicios, err := r.api.Servicios(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogo: servicios: %w", err)
	}
	r.servicios = servicios
	return servicios, nil
}

// Subservicios hijos del servicio, cacheados por id.
func (r *Resolver) Subservicios(ctx context.Context, idServicio int) ([]entity.Subservicio, error) {
	if subs, ok := r.subservicios[idServicio]; ok {
		return subs, nil
	}
	subs, err := r.api.Subservicios(ctx, idServicio)
	if err != nil {
		return nil, fmt.Errorf("catalogo: subservicios de %d: %w", idServicio, err)
	}
	r.subservicios[idServicio] = subs
	return subs, nil
}

// SeleccionarServicio fija el servicio activo e invalida el subservicio
// elegido (los hijos del nuevo servicio son otros).
func (r *Resolver) SeleccionarServicio(s entity.Servicio) {
	r.seleccionado = &s
	r.subSeleccionado = nil
}

// SeleccionarSubservicio fija el subservicio activo.
func (r *Resolver) SeleccionarSubservicio(ss entity.Subservicio) {
	r.subSeleccionado = &ss
}

// LimpiarSeleccion borra servicio y subservicio elegidos (el cache queda).
func (r *Resolver) LimpiarSeleccion() {
	r.seleccionado = nil
	r.subSeleccionado = nil
}

// Seleccion devuelve el par elegido; nil donde no hay selección.
func (r *Resolver) Seleccion() (*entity.Servicio, *entity.Subservicio) {
	return r.seleccionado, r.subSeleccionado
}
