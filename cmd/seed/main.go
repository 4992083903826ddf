package main

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/novedades-silva/toystore-backend/config"
	"github.com/novedades-silva/toystore-backend/models"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the catalog schema and seeds the demo toy store data.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NOVEDADES SILVA - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.CatalogGorm.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	log.Println("✓ Schema migrated")

	var count int64
	config.CatalogGorm.Model(&models.Category{}).Count(&count)
	if count > 0 {
		fmt.Println("❌ Catalog already contains categories, refusing to seed twice")
		return
	}

	categories := seedCategories()
	seedProducts(categories)

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Catalog Seeded Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/catalog")
	fmt.Println("3. Login at POST /api/v1/admin/login to manage inventory")
	fmt.Println()
}

func seedCategories() map[string]models.Category {
	seeds := []models.Category{
		{Name: "Figuras de Acción", ImageURL: "/action-figure-superhero-toy.jpg", Icon: "⚔️"},
		{Name: "Muñecas", ImageURL: "/doll-princess-toy.jpg", Icon: "🎀"},
		{Name: "Juegos de Mesa", ImageURL: "/board-game-family-fun.jpg", Icon: "🎲"},
		{Name: "Electrónicos", ImageURL: "/electronic-toy-robot-gadget.jpg", Icon: "🎮"},
		{Name: "Educativos", ImageURL: "/educational-toy-learning-blocks.jpg", Icon: "📚"},
		{Name: "Peluches", ImageURL: "/plush-teddy-bear-soft-toy.jpg", Icon: "🧸"},
	}

	byName := make(map[string]models.Category, len(seeds))
	for _, cat := range seeds {
		cat.ID = uuid.Must(uuid.NewV7())
		cat.Slug = models.Slugify(cat.Name)
		if err := config.CatalogGorm.Create(&cat).Error; err != nil {
			log.Fatalf("Failed to seed category %q: %v", cat.Name, err)
		}
		byName[cat.Name] = cat
		log.Printf("✓ Category: %s (%s)", cat.Name, cat.Slug)
	}
	return byName
}

func seedProducts(categories map[string]models.Category) {
	type seed struct {
		name         string
		price        float64
		description  string
		image        string
		categoryName string
		related      []string
		stock        int
	}

	seeds := []seed{
		{
			name:         "Super Robot X-2000",
			price:        45.99,
			description:  "El robot más avanzado para niños. Camina, habla y tiene luces LED brillantes. Perfecto para aventuras espaciales imaginarias.",
			image:        "/futuristic-toy-robot-led-lights.jpg",
			categoryName: "Figuras de Acción",
			related:      []string{"/robot-toy-side-view.jpg", "/robot-toy-back-view.jpg", "/robot-toy-in-action-lights.jpg"},
			stock:        12,
		},
		{
			name:         "Set de Héroes Galácticos",
			price:        29.99,
			description:  "Un set completo de 5 héroes listos para salvar la galaxia. Incluye accesorios y vehículos.",
			image:        "/superhero-action-figures-set.jpg",
			categoryName: "Figuras de Acción",
			related:      []string{"/superhero-figure-closeup.jpg", "/hero-vehicle-spaceship.jpg"},
			stock:        8,
		},
		{
			name:         "Castillo Mágico de Princesas",
			price:        89.99,
			description:  "Un castillo enorme con 3 pisos, muebles y luces. El sueño de cualquier princesa hecho realidad.",
			image:        "/princess-castle-dollhouse-pink.jpg",
			categoryName: "Muñecas",
			related:      []string{"/castle-interior-rooms-furniture.jpg"},
			stock:        4,
		},
		{
			name:         "Monopoly Junior",
			price:        19.99,
			description:  "La versión rápida y divertida del clásico juego de operaciones inmobiliarias, diseñada para los más pequeños.",
			image:        "/monopoly-junior-box.jpg",
			categoryName: "Juegos de Mesa",
			stock:        20,
		},
		{
			name:         "Mini Drone Volador",
			price:        55.00,
			description:  "Drone fácil de controlar con cámara HD. Ideal para principiantes y niños mayores de 10 años.",
			image:        "/mini-drone-camera.jpg",
			categoryName: "Electrónicos",
			stock:        6,
		},
		{
			name:         "Oso de Peluche Gigante",
			price:        39.99,
			description:  "Suave y adorable oso de peluche de 60cm. El compañero perfecto para abrazar.",
			image:        "/giant-teddy-bear.jpg",
			categoryName: "Peluches",
			stock:        15,
		},
		{
			name:         "Kit STEM de Ciencias",
			price:        34.99,
			description:  "Más de 50 experimentos científicos para aprender jugando. Incluye laboratorio completo.",
			image:        "/stem-science-kit.jpg",
			categoryName: "Educativos",
			stock:        10,
		},
		{
			name:         "Auto de Carreras RC",
			price:        42.99,
			description:  "Carro a control remoto de alta velocidad. Alcanza hasta 30 km/h.",
			image:        "/rc-racing-car.jpg",
			categoryName: "Electrónicos",
			stock:        9,
		},
	}

	for _, s := range seeds {
		cat, ok := categories[s.categoryName]
		if !ok {
			log.Fatalf("Unknown category %q for product %q", s.categoryName, s.name)
		}

		images := append([]string{s.image}, s.related...)
		product := models.Product{
			ID:             uuid.Must(uuid.NewV7()),
			Name:           s.name,
			Description:    s.description,
			Price:          s.price,
			ImageURL:       s.image,
			Images:         models.ImageList(images),
			CategoryID:     cat.ID,
			CategorySlug:   cat.Slug,
			Stock:          s.stock,
			Specifications: models.SpecsMap{},
		}

		if err := config.CatalogGorm.Create(&product).Error; err != nil {
			log.Fatalf("Failed to seed product %q: %v", s.name, err)
		}
		log.Printf("✓ Product: %s ($%.2f)", product.Name, product.Price)
	}
}
