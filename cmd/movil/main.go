// Consola de verificación del núcleo móvil: inicia sesión con las
// credenciales del entorno, resuelve el destino del usuario y recorre las
// vistas de solo lectura (catálogo, órdenes por estado, facturas pendientes).
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pqautoexpert/suite360-movil/internal/application/billing"
	"github.com/pqautoexpert/suite360-movil/internal/application/catalogo"
	"github.com/pqautoexpert/suite360-movil/internal/application/ordenes"
	"github.com/pqautoexpert/suite360-movil/internal/application/session"
	"github.com/pqautoexpert/suite360-movil/internal/domain"
	"github.com/pqautoexpert/suite360-movil/internal/domain/entity"
	"github.com/pqautoexpert/suite360-movil/internal/infrastructure/api"
	"github.com/pqautoexpert/suite360-movil/pkg/config"
	"github.com/pqautoexpert/suite360-movil/pkg/logger"
	"github.com/pqautoexpert/suite360-movil/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola de verificación")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cliente := api.New(cfg.API)
	sessionUC := session.New(cliente)

	sesion, err := sessionUC.Login(ctx, cfg.Consola.Usuario, cfg.Consola.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidacion) {
			log.Fatal().Msg("faltan CONSOLA_USUARIO / CONSOLA_PASSWORD en el entorno")
		}
		log.Fatal().Err(err).Msg("login")
	}

	claims, err := token.Leer(sesion.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("leer claims del token")
	}
	log.Info().
		Str("id_usuario", claims.IDUsuario).
		Str("usuario", sesion.Usuario.Nombres+" "+sesion.Usuario.Apellidos).
		Str("rol", sesion.Usuario.TipoUsuario).
		Str("destino", string(sesion.Destino)).
		Msg("sesión iniciada")

	autenticado := cliente.ConToken(sesion.Token)

	resolver := catalogo.New(autenticado)
	servicios, err := resolver.Servicios(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de servicios")
	}
	for _, s := range servicios {
		subs, err := resolver.Subservicios(ctx, s.ID)
		if err != nil {
			log.Error().Err(err).Str("servicio", s.Nombre).Msg("subservicios")
			continue
		}
		fmt.Printf("%s (%d subservicios)\n", s.Nombre, len(subs))
		for _, ss := range subs {
			fmt.Printf("  - %s → módulo %q\n", ss.Nombre, ordenes.ModuloParaSubservicio(ss.Nombre))
		}
	}

	tracker := ordenes.NewTracker(autenticado)
	if sesion.Destino == session.DestinoAdmin {
		for _, estado := range []entity.EstadoOrden{entity.OrdenAsignada, entity.OrdenEnProceso, entity.OrdenFinalizada} {
			lista, err := tracker.Listar(ctx, estado)
			if err != nil {
				log.Error().Err(err).Str("estado", string(estado)).Msg("listar órdenes")
				continue
			}
			fmt.Printf("\nÓrdenes %s: %d\n", estado, len(lista))
			for _, o := range lista {
				fmt.Printf("  #%d %s [%s] %s · inicio %s\n",
					o.ID, o.NombreCliente, o.Placa, o.Subservicio, ordenes.FormatearFecha(o.FechaInicio))
			}
		}

		facturaUC := billing.NewFacturaUseCase(autenticado)
		pendientes, err := facturaUC.Pendientes(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("facturas pendientes")
		}
		fmt.Printf("\nFacturas pendientes: %d\n", len(pendientes))
	} else {
		lista, err := tracker.PendientesTecnico(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("órdenes del técnico")
		}
		fmt.Printf("\nÓrdenes pendientes del técnico: %d\n", len(lista))
		for _, o := range lista {
			fmt.Printf("  #%d %s [%s] %s\n", o.ID, o.NombreCliente, o.Placa, o.Subservicio)
		}
	}

	log.Info().Msg("verificación completada")
}
