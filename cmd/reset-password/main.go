package main

import (
	"flag"
	"os"

	"delicrem-api/internal/model"
	"delicrem-api/pkg/database"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Operator tool: resets a usuario's password and drops any active session.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	email := flag.String("email", "admin@delicrem.com", "email del usuario")
	password := flag.String("password", "admin123", "nueva contraseña")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env no encontrado, usando variables del sistema")
	}

	db := database.ConnectDB()

	var usuario model.Usuario
	if err := db.Where("email = ?", *email).First(&usuario).Error; err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("usuario no encontrado")
	}

	if err := usuario.SetPassword(*password); err != nil {
		log.Fatal().Err(err).Msg("no se pudo generar el hash")
	}

	// Clearing token_version invalidates whatever session was open
	err := db.Model(&usuario).Updates(map[string]interface{}{
		"password":      usuario.Password,
		"token_version": "",
	}).Error
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo actualizar la contraseña")
	}

	log.Info().Str("email", *email).Msg("contraseña restablecida")
}
