// token emite un JWT de operador firmado con JWT_SECRET.
//
// Uso: go run ./cmd/token -sub ana -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Pedidos-api/pkg/config"
	"github.com/jhoicas/Pedidos-api/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "operador", "identificador del operador")
	role := flag.String("role", jwt.RoleOperator, "rol: admin u operator")
	flag.Parse()

	if *role != jwt.RoleAdmin && *role != jwt.RoleOperator {
		fmt.Fprintf(os.Stderr, "rol inválido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if !cfg.JWT.Enabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET vacío: la API corre sin autenticación")
		os.Exit(1)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *subject, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
