package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Café de Prueba", 42000, "/prueba.jpg", "Café", "Finca Test", "Un café de prueba.", 10)
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, StatusActive, p.Status)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.Reviews)
	assert.NotEmpty(t, p.CreatedAt)
}

func TestProduct_Validate(t *testing.T) {
	base := Product{Name: "Café", Price: 1000, Stock: 5, Status: StatusActive}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		p := base
		p.Name = "  "
		assert.Error(t, p.Validate())
	})

	t.Run("negative price", func(t *testing.T) {
		p := base
		p.Price = -1
		assert.Error(t, p.Validate())
	})

	t.Run("negative stock", func(t *testing.T) {
		p := base
		p.Stock = -1
		assert.Error(t, p.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		p := base
		p.Status = "archived"
		assert.Error(t, p.Validate())
	})
}

func TestProduct_IsLowStock(t *testing.T) {
	cases := []struct {
		stock int
		want  bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	}
	for _, tc := range cases {
		p := Product{Stock: tc.stock}
		assert.Equal(t, tc.want, p.IsLowStock(), "stock=%d", tc.stock)
	}
}

func TestProduct_MatchesQuery(t *testing.T) {
	p := Product{
		Name:        "Café Arábica Premium Huila",
		Category:    "Café",
		Seller:      "Finca El Paraíso",
		Description: "Notas frutales y chocolate.",
	}

	assert.True(t, p.MatchesQuery("arábica"))
	assert.True(t, p.MatchesQuery("paraíso"))
	assert.True(t, p.MatchesQuery("chocolate"))
	assert.True(t, p.MatchesQuery("CAFÉ"))
	assert.False(t, p.MatchesQuery("tractor"))
}

func TestProduct_InCategory(t *testing.T) {
	p := Product{Category: "Fertilizantes"}
	assert.True(t, p.InCategory("fertiliza"))
	assert.True(t, p.InCategory("FERTILIZANTES"))
	assert.False(t, p.InCategory("semillas"))
}

func TestSeedProducts(t *testing.T) {
	seed := SeedProducts()
	require.Len(t, seed, 14)

	for _, p := range seed {
		assert.NoError(t, p.Validate(), "product %d", p.ID)
	}

	// Mutating a returned slice must not leak into later calls.
	seed[0].Stock = 0
	assert.Equal(t, 25, SeedProducts()[0].Stock)
}

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.InDelta(t, 4.3, AverageRating(reviews), 0.001)
}

func TestNewReview(t *testing.T) {
	r, err := NewReview(7, "u1", "Ana", 5, "  Excelente café  ")
	require.NoError(t, err)
	assert.Equal(t, "Excelente café", r.Comment)

	_, err = NewReview(7, "u1", "Ana", 6, "x")
	assert.Error(t, err)
	_, err = NewReview(7, "", "Ana", 3, "x")
	assert.Error(t, err)
}
