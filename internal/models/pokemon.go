package models

// Pokemon represents a row of the `pokemon` table.
type Pokemon struct {
	ID        int64   `json:"id"`
	Numero    int     `json:"numero_pokemon"`
	Nombre    string  `json:"nombre"`
	Tipo      string  `json:"tipo"`
	Nivel     int     `json:"nivel"`
	Habilidad string  `json:"habilidad"`
	ImagenURL *string `json:"imagen_url"` // nil cuando nunca se adjuntó imagen
}

// PokemonForm is the wire shape of POST (multipart) and PUT (url-encoded)
// requests against /api/pokemon. It is decoded once at the boundary and
// converted into a typed command before any storage call.
type PokemonForm struct {
	ID        int64  `form:"id"`
	Numero    int    `form:"numero_pokemon"`
	Nombre    string `form:"nombre"`
	Tipo      string `form:"tipo"`
	Nivel     *int   `form:"nivel"`
	Habilidad string `form:"habilidad"`
	// Echo de la imagen actual enviado por el cliente en PUT. Se acepta y
	// se descarta: la actualización nunca toca imagen_url.
	ImagenExistente string `form:"imagen_url_existente"`
}

// CreatePokemon is the validated command for the create operation.
type CreatePokemon struct {
	Numero    int
	Nombre    string
	Tipo      string
	Nivel     int
	Habilidad string
}

// UpdatePokemon is the validated command for the update operation. It only
// carries scalar fields; the stored image reference is out of its reach.
type UpdatePokemon struct {
	ID        int64
	Numero    int
	Nombre    string
	Tipo      string
	Nivel     int
	Habilidad string
}

// CreateCommand validates the form for a create and returns the command.
func (f PokemonForm) CreateCommand() (*CreatePokemon, error) {
	nombre := trim(f.Nombre)
	tipo := trim(f.Tipo)
	if nombre == "" || tipo == "" || f.Numero <= 0 {
		return nil, &ValidationError{Message: "El número, nombre y tipo del Pokémon son obligatorios."}
	}
	return &CreatePokemon{
		Numero:    f.Numero,
		Nombre:    nombre,
		Tipo:      tipo,
		Nivel:     f.nivel(),
		Habilidad: trim(f.Habilidad),
	}, nil
}

// UpdateCommand validates the form for an update and returns the command.
func (f PokemonForm) UpdateCommand() (*UpdatePokemon, error) {
	nombre := trim(f.Nombre)
	tipo := trim(f.Tipo)
	if f.ID <= 0 || nombre == "" || tipo == "" || f.Numero <= 0 {
		return nil, &ValidationError{Message: "ID, número, nombre y tipo del Pokémon son obligatorios para actualizar."}
	}
	return &UpdatePokemon{
		ID:        f.ID,
		Numero:    f.Numero,
		Nombre:    nombre,
		Tipo:      tipo,
		Nivel:     f.nivel(),
		Habilidad: trim(f.Habilidad),
	}, nil
}

// nivel aplica el valor por defecto 1 cuando el campo no viene en el form.
func (f PokemonForm) nivel() int {
	if f.Nivel == nil {
		return 1
	}
	return *f.Nivel
}
