// Comando de arranque inicial: crea el usuario administrador raíz si no
// existe y, opcionalmente, importa el catálogo de productos desde un CSV
// exportado del sistema anterior (codificado en Latin-1).
//
// Formato del CSV: name;category;price;special;open_price
//
//	Karhu;BEER;4.50;true;false
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
	"github.com/jhoicas/Barra-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Barra-api/pkg/config"
	"github.com/jhoicas/Barra-api/pkg/logger"
)

func main() {
	productsCSV := flag.String("products", "", "CSV de productos a importar (Latin-1, separador ';')")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	if err := seedAdmin(userRepo, cfg.Admin, log); err != nil {
		log.Fatal().Err(err).Msg("crear administrador raíz")
	}

	if *productsCSV != "" {
		productRepo := postgres.NewProductRepository(pool)
		if err := importProducts(productRepo, *productsCSV, log); err != nil {
			log.Fatal().Err(err).Msg("importar productos")
		}
	}

	log.Info().Msg("seed completado")
}

// seedAdmin crea el administrador raíz en el primer arranque. Si el número de
// socio ya existe no hace nada, para que el comando sea re-ejecutable.
func seedAdmin(userRepo repository.UserRepository, admin config.AdminConfig, log *logger.Logger) error {
	existing, err := userRepo.GetByMemberNo(admin.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info().Str("member_no", admin.Username).Msg("administrador raíz ya existe")
		return nil
	}
	if admin.Password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD es obligatorio para el primer seed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &entity.User{
		MemberNo:   admin.Username,
		Name:       "Administrador",
		Password:   string(hash),
		Permission: entity.PermissionAdmin,
		Balance:    decimal.Zero,
	}
	if err := userRepo.Create(user); err != nil {
		return err
	}
	log.Info().Str("member_no", user.MemberNo).Msg("administrador raíz creado")
	return nil
}

// importProducts carga el catálogo desde un CSV Latin-1. Los nombres ya
// existentes se saltan, para que importar dos veces no duplique.
func importProducts(productRepo repository.ProductRepository, path string, log *logger.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Los exportes del sistema anterior vienen en ISO 8859-1
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	reader.Comma = ';'
	reader.FieldsPerRecord = 5

	records, err := reader.ReadAll()
	if err != nil {
		return err
	}

	imported, skipped := 0, 0
	for _, rec := range records {
		name := strings.TrimSpace(rec[0])
		if name == "" {
			continue
		}
		category := entity.Category(strings.ToUpper(strings.TrimSpace(rec[1])))
		if !category.Valid() {
			log.Warn().Str("name", name).Str("category", rec[1]).Msg("categoría desconocida, fila saltada")
			skipped++
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil {
			log.Warn().Str("name", name).Str("price", rec[2]).Msg("precio inválido, fila saltada")
			skipped++
			continue
		}
		special, _ := strconv.ParseBool(strings.TrimSpace(rec[3]))
		openPrice, _ := strconv.ParseBool(strings.TrimSpace(rec[4]))

		existing, err := productRepo.GetByName(name)
		if err != nil {
			return err
		}
		if existing != nil {
			skipped++
			continue
		}

		product := &entity.Product{
			Name:             name,
			Category:         category,
			Price:            price,
			IsSpecialProduct: special,
			IsOpenPrice:      openPrice,
		}
		if err := productRepo.Create(product); err != nil {
			return err
		}
		imported++
	}

	log.Info().Int("imported", imported).Int("skipped", skipped).Msg("importación de productos terminada")
	return nil
}
