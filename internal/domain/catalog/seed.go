package catalog

// SeedProducts returns the default demo catalog used when no listings
// have been persisted yet. Callers receive a fresh copy on every call.
func SeedProducts() []Product {
	seed := []Product{
		{
			ID: 1, Name: "Café Arábica Premium Huila",
			Price: 45000, OriginalPrice: 50000,
			Image: "/cafe-arabica.jpg", Rating: 4.8, Reviews: 124,
			Category: "Café", Seller: "Finca El Paraíso", Discount: 10, Stock: 25,
			Description: "Café arábica de alta calidad cultivado en las montañas del Huila. Notas frutales y chocolate con acidez balanceada.",
			Origin:      "Huila, Colombia", Variety: "Arábica", RoastLevel: "Medio",
			Weight: "500g", Altitude: "1800m",
			CreatedAt: "2024-01-15", Status: StatusActive,
		},
		{
			ID: 2, Name: "Café Geisha Especial",
			Price: 85000,
			Image: "/Geisha.jpg", Rating: 4.9, Reviews: 89,
			Category: "Café", Seller: "Café de los Andes", Stock: 12,
			Description: "Variedad Geisha excepcional con perfil floral único. Cultivado a gran altitud con métodos tradicionales.",
			Origin:      "Nariño, Colombia", Variety: "Geisha", RoastLevel: "Claro",
			Weight: "250g", Altitude: "2100m",
			CreatedAt: "2024-01-20", Status: StatusActive,
		},
		{
			ID: 3, Name: "Café Orgánico Tolima",
			Price: 38000, OriginalPrice: 42000,
			Image: "/OrganicoTolima.webp", Rating: 4.6, Reviews: 156,
			Category: "Café", Seller: "Cooperativa Tolima", Discount: 9, Stock: 45,
			Description: "Café 100% orgánico certificado. Proceso lavado con notas a caramelo y nueces.",
			Origin:      "Tolima, Colombia", Variety: "Caturra", RoastLevel: "Medio-Oscuro",
			Weight: "1kg", Altitude: "1600m",
			CreatedAt: "2024-01-10", Status: StatusActive,
		},
		{
			ID: 4, Name: "Machete Cafetero Profesional",
			Price: 65000,
			Image: "/MacheteCafetero.jpg", Rating: 4.7, Reviews: 78,
			Category: "Herramientas", Seller: "Herramientas del Campo", Stock: 30,
			Description: "Machete especializado para cosecha de café. Acero inoxidable de alta calidad con mango ergonómico.",
			CreatedAt:   "2024-01-12", Status: StatusActive,
		},
		{
			ID: 5, Name: "Canastas Recolectoras de Café",
			Price: 25000,
			Image: "/CanastaXD.webp", Rating: 4.5, Reviews: 92,
			Category: "Herramientas", Seller: "Implementos Agrícolas", Stock: 50,
			Description: "Set de 3 canastas de mimbre tradicionales para recolección de café. Resistentes y duraderas.",
			CreatedAt:   "2024-01-08", Status: StatusActive,
		},
		{
			ID: 6, Name: "Despulpadora Manual de Café",
			Price: 450000,
			Image: "/despulpadora.jpg", Rating: 4.8, Reviews: 34,
			Category: "Maquinaria", Seller: "Maquinaria Cafetera", Stock: 8,
			Description: "Despulpadora manual de alta eficiencia. Ideal para pequeños productores. Fácil mantenimiento.",
			CreatedAt:   "2024-01-05", Status: StatusActive,
		},
		{
			ID: 7, Name: "Fertilizante Orgánico para Café",
			Price: 35000,
			Image: "/fertilizante.jpg", Rating: 4.6, Reviews: 145,
			Category: "Fertilizantes", Seller: "Abonos Naturales", Stock: 60,
			Description: "Fertilizante 100% orgánico especialmente formulado para cultivos de café. Rico en nutrientes esenciales.",
			Weight:      "25kg",
			CreatedAt:   "2024-01-18", Status: StatusActive,
		},
		{
			ID: 8, Name: "Compost Premium Cafetero",
			Price: 28000,
			Image: "/CompostCafetero.webp", Rating: 4.4, Reviews: 67,
			Category: "Fertilizantes", Seller: "Tierra Fértil", Stock: 40,
			Description: "Compost elaborado con pulpa de café y materiales orgánicos. Mejora la estructura del suelo.",
			Weight:      "20kg",
			CreatedAt:   "2024-01-14", Status: StatusActive,
		},
		{
			ID: 9, Name: "Semillas de Café Caturra",
			Price: 15000,
			Image: "/Caturra.webp", Rating: 4.7, Reviews: 89,
			Category: "Semillas", Seller: "Vivero San José", Stock: 100,
			Description: "Semillas certificadas de café Caturra. Alta germinación y resistencia a enfermedades.",
			Variety:     "Caturra",
			CreatedAt:   "2024-01-22", Status: StatusActive,
		},
		{
			ID: 10, Name: "Plántulas de Café Castillo",
			Price: 3500,
			Image: "/Castillo.jpg", Rating: 4.8, Reviews: 156,
			Category: "Semillas", Seller: "Vivero La Esperanza", Stock: 200,
			Description: "Plántulas de 6 meses, variedad Castillo resistente a roya. Listas para trasplante.",
			Variety:     "Castillo",
			CreatedAt:   "2024-01-25", Status: StatusActive,
		},
		{
			ID: 11, Name: "Secadora Solar para Café",
			Price: 1200000,
			Image: "/Secadora.jpg", Rating: 4.9, Reviews: 23,
			Category: "Maquinaria", Seller: "Tecnología Cafetera", Stock: 3,
			Description: "Secadora solar de alta eficiencia. Reduce tiempo de secado y mejora calidad del grano.",
			CreatedAt:   "2024-01-03", Status: StatusActive,
		},
		{
			ID: 12, Name: "Tostadora Artesanal",
			Price: 2800000,
			Image: "/tostadora.jpg", Rating: 4.8, Reviews: 15,
			Category: "Maquinaria", Seller: "Equipos de Tostado", Stock: 2,
			Description: "Tostadora artesanal para pequeños lotes. Control preciso de temperatura y tiempo.",
			CreatedAt:   "2024-01-01", Status: StatusActive,
		},
		{
			ID: 13, Name: "Café Especial Microlote",
			Price: 120000,
			Image: "/Microlote.webp", Rating: 5.0, Reviews: 12,
			Category: "Café", Seller: "Finca Especial", Stock: 3,
			Description: "Microlote excepcional de café especial. Edición limitada con puntaje de 90+ puntos.",
			Origin:      "Cauca, Colombia", Variety: "Pink Bourbon", RoastLevel: "Claro",
			Weight: "200g", Altitude: "2200m",
			CreatedAt: "2024-01-28", Status: StatusActive,
		},
		{
			ID: 14, Name: "Fertilizante Líquido Concentrado",
			Price: 55000,
			Image: "/FertilizanteLiquido.jpg", Rating: 4.5, Reviews: 34,
			Category: "Fertilizantes", Seller: "Nutrición Vegetal", Stock: 4,
			Description: "Fertilizante líquido concentrado de rápida absorción. Ideal para aplicación foliar.",
			Weight:      "5L",
			CreatedAt:   "2024-01-26", Status: StatusActive,
		},
	}
	out := make([]Product, len(seed))
	copy(out, seed)
	return out
}
