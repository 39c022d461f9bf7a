package entity

import "encoding/json"

// TipoFoto slot de evidencia fotográfica obligatoria de una identificación.
type TipoFoto string

const (
	FotoVehiculo             TipoFoto = "vehiculo"
	FotoMotor                TipoFoto = "motor"
	FotoChasis               TipoFoto = "chasis"
	FotoPlaquillaReferencial TipoFoto = "plaquilla_referencial"
	FotoPlacaVIN             TipoFoto = "placa_vin"
	FotoAdhesivoSeguridad    TipoFoto = "adhesivo_seguridad"
	FotoLecturaECU           TipoFoto = "lectura_ecu"
)

// TiposFoto los 7 slots, en el orden en que se presentan al técnico.
// Que cada slot tenga foto es un requisito del proceso de negocio, no del
// software: Finalizar no lo exige.
var TiposFoto = []TipoFoto{
	FotoVehiculo,
	FotoMotor,
	FotoChasis,
	FotoPlaquillaReferencial,
	FotoPlacaVIN,
	FotoAdhesivoSeguridad,
	FotoLecturaECU,
}

// NombreFoto nombre a mostrar de cada slot.
func NombreFoto(t TipoFoto) string {
	switch t {
	case FotoVehiculo:
		return "Vehículo"
	case FotoMotor:
		return "Motor"
	case FotoChasis:
		return "Chasis"
	case FotoPlaquillaReferencial:
		return "Plaquilla Referencial"
	case FotoPlacaVIN:
		return "Placa VIN"
	case FotoAdhesivoSeguridad:
		return "Adhesivo Seguridad"
	case FotoLecturaECU:
		return "Lectura ECU"
	default:
		return string(t)
	}
}

// FotoDetalle una foto ya subida al servidor, con su descripción opcional.
type FotoDetalle struct {
	ID          int
	Tipo        TipoFoto
	Path        string
	Descripcion string
}

// DatosVehiculo atributos físicos/seriales de un vehículo. Los mismos campos
// sirven para la respuesta de la ANT y para el ingreso manual del operador.
type DatosVehiculo struct {
	Placa        string `json:"placa"`
	Marca        string `json:"marca"`
	Modelo       string `json:"modelo"`
	Anio         string `json:"anio"`
	PaisOrigen   string `json:"pais_origen"`
	NumeroMotor  string `json:"numero_motor"`
	NumeroChasis string `json:"numero_chasis"`
}

// FichaVehiculo unión etiquetada: los datos del vehículo son autoritativos
// (consulta ANT) o manuales (digitados por el operador), nunca una mezcla.
// La variante solo se fija por los constructores, así la bandera y los datos
// no pueden quedar inconsistentes.
type FichaVehiculo struct {
	manual bool
	datos  DatosVehiculo
}

// FichaAutoritativa ficha construida desde la respuesta del registro (ANT).
func FichaAutoritativa(d DatosVehiculo) FichaVehiculo {
	return FichaVehiculo{manual: false, datos: d}
}

// FichaManual ficha digitada por el operador tras un fallback.
func FichaManual(d DatosVehiculo) FichaVehiculo {
	return FichaVehiculo{manual: true, datos: d}
}

// EsManual reporta si la ficha es de ingreso manual.
func (f FichaVehiculo) EsManual() bool { return f.manual }

// Datos devuelve los atributos del vehículo de la variante activa.
func (f FichaVehiculo) Datos() DatosVehiculo { return f.datos }

// fichaJSON forma persistida: los atributos más la bandera "manual", igual que
// la guarda el backend dentro de datos_vehiculo.
type fichaJSON struct {
	DatosVehiculo
	Manual bool `json:"manual"`
}

// MarshalJSON serializa la ficha con su bandera manual.
func (f FichaVehiculo) MarshalJSON() ([]byte, error) {
	return json.Marshal(fichaJSON{DatosVehiculo: f.datos, Manual: f.manual})
}

// UnmarshalJSON reconstruye la variante desde la forma persistida.
func (f *FichaVehiculo) UnmarshalJSON(b []byte) error {
	var aux fichaJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.manual = aux.Manual
	f.datos = aux.DatosVehiculo
	return nil
}

// CasoIdentificacion borrador de una identificación vehicular. Es un valor:
// cada edición produce una copia reemplazada wholesale en el workflow, lo que
// vuelve triviales las propiedades de idempotencia del guardado.
type CasoIdentificacion struct {
	IDOrden           int
	Placa             string
	CedulaSolicitante string
	CedulaDueno       string
	Solicitante       Persona
	Vehiculo          *FichaVehiculo // nil hasta la primera consulta o carga
	Observaciones     string
	Conclusiones      string
	Fotos             []FotoDetalle
}

// FotosDeTipo filtra las fotos ya subidas para un slot.
func (c CasoIdentificacion) FotosDeTipo(t TipoFoto) []FotoDetalle {
	var res []FotoDetalle
	for _, f := range c.Fotos {
		if f.Tipo == t {
			res = append(res, f)
		}
	}
	return res
}
