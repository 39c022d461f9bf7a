package dto

// Envelope campos comunes de las respuestas de la API: {ok: boolean, ...}.
// ok:false se trata como falla recuperable local, nunca fatal.
type Envelope struct {
	Ok  bool   `json:"ok"`
	Msg string `json:"msg"`
}
