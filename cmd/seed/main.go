// seed genera un script SQL para poblar catálogos e inventario a partir de
// un CSV exportado del sistema anterior (codificado en Windows-1252).
//
// Columnas esperadas: serial_number;qr_code;model;institution;service;
// taker_email;inventory_date;status;last_maintenance_date;manufacture_date
//
// Uso: go run ./cmd/seed [ruta/inventario.csv]
// Por defecto busca inventario.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_inventory.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed_inventory.sql"

type record struct {
	serial, qr, model, institution, service, takerEmail string
	inventoryDate, status, lastMaintenance, manufacture string
}

func main() {
	csvPath := "inventario.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los exportes del sistema anterior vienen en Windows-1252
	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 10

	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "CSV sin filas de datos")
		os.Exit(1)
	}

	var records []record
	for _, row := range rows[1:] { // salta cabecera
		rec := record{
			serial:          strings.TrimSpace(row[0]),
			qr:              strings.TrimSpace(row[1]),
			model:           strings.TrimSpace(row[2]),
			institution:     strings.TrimSpace(row[3]),
			service:         strings.TrimSpace(row[4]),
			takerEmail:      strings.TrimSpace(row[5]),
			inventoryDate:   strings.TrimSpace(row[6]),
			status:          strings.TrimSpace(row[7]),
			lastMaintenance: strings.TrimSpace(row[8]),
			manufacture:     strings.TrimSpace(row[9]),
		}
		if rec.serial == "" || rec.model == "" || rec.institution == "" || rec.service == "" {
			continue
		}
		records = append(records, rec)
	}

	var sb strings.Builder
	sb.WriteString("-- Generado por cmd/seed a partir de " + filepath.Base(csvPath) + "\n\n")

	writeCatalog(&sb, "institutions", collect(records, func(r record) string { return r.institution }))
	writeCatalog(&sb, "models", collect(records, func(r record) string { return r.model }))
	writeCatalog(&sb, "services", collect(records, func(r record) string { return r.service }))

	sb.WriteString("INSERT INTO inventory (serial_number, qr_code, model_id, institution_id, service_id, inventory_taker_id, inventory_date, status, last_maintenance_date, manufacture_date)\nVALUES\n")
	for i, rec := range records {
		sep := ","
		if i == len(records)-1 {
			sep = ""
		}
		fmt.Fprintf(&sb, "  (%s, %s, (SELECT id FROM models WHERE name = %s), (SELECT id FROM institutions WHERE name = %s), (SELECT id FROM services WHERE name = %s), (SELECT id FROM users WHERE email = %s), %s, %s, %s, %s)%s\n",
			quote(rec.serial), quote(rec.qr),
			quote(rec.model), quote(rec.institution), quote(rec.service),
			quote(rec.takerEmail),
			sqlDate(rec.inventoryDate), quote(rec.status),
			sqlDate(rec.lastMaintenance), sqlDate(rec.manufacture), sep)
	}
	sb.WriteString("ON CONFLICT (serial_number) DO NOTHING;\n")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(sb.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%d registros)\n", outPath, len(records))
}

// collect nombres únicos ordenados para salida estable.
func collect(records []record, get func(record) string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[get(r)] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func writeCatalog(sb *strings.Builder, table string, names []string) {
	fmt.Fprintf(sb, "INSERT INTO %s (name) VALUES\n", table)
	for i, n := range names {
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		fmt.Fprintf(sb, "  (%s)%s\n", quote(n), sep)
	}
	sb.WriteString("ON CONFLICT (name) DO NOTHING;\n\n")
}

// quote escapa comillas simples para literales SQL.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// sqlDate convierte dd/mm/aaaa (o vacío) a literal DATE o NULL.
func sqlDate(s string) string {
	if s == "" {
		return "NULL"
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return "NULL"
	}
	return "'" + t.Format("2006-01-02") + "'"
}
