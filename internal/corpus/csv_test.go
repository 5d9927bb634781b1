package corpus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramalMr/cocktail-advisor/internal/corpus"
)

const sampleCSV = `id,name,alcoholic,category,glassType,instructions,drinkThumbnail,ingredients,ingredientMeasures,tags
11007,margarita,Alcoholic,Ordinary Drink,Cocktail glass,"Rub the rim of the glass with the lime slice. Shake with ice.",https://example.com/margarita.jpg,"['Tequila', 'Triple sec', 'Lime juice']","['1 1/2 oz', '1/2 oz', '1 oz']","['IBA', 'Classic']"
12784,"thai coffee",Non alcoholic,Coffee / Tea,Coffee mug,Brew and sweeten.,,"['Coffee', 'Sugar', 'Cream']","['None', '1 tsp', None]",
`

func TestRead(t *testing.T) {
	cocktails, err := corpus.Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, cocktails, 2)

	margarita := cocktails[0]
	require.Equal(t, "11007", margarita.ID)
	require.Equal(t, "Margarita", margarita.Name)
	require.True(t, margarita.Alcoholic)
	require.Equal(t, "Ordinary Drink", margarita.Category)
	require.Equal(t, "Cocktail glass", margarita.GlassType)
	require.Equal(t, "https://example.com/margarita.jpg", margarita.ThumbnailURL)
	require.Equal(t, []string{"IBA", "Classic"}, margarita.Tags)

	require.Len(t, margarita.Ingredients, 3)
	require.Equal(t, "tequila", margarita.Ingredients[0].Name)
	require.Equal(t, "1 1/2 oz", margarita.Ingredients[0].Measure)
	require.Equal(t, "triple sec", margarita.Ingredients[1].Name)

	coffee := cocktails[1]
	require.Equal(t, "Thai Coffee", coffee.Name)
	require.False(t, coffee.Alcoholic)
	require.Empty(t, coffee.Tags)

	// A None measure stays empty rather than becoming the literal string.
	require.Len(t, coffee.Ingredients, 3)
	require.Equal(t, "coffee", coffee.Ingredients[0].Name)
	require.Empty(t, coffee.Ingredients[0].Measure)
	require.Equal(t, "1 tsp", coffee.Ingredients[1].Measure)
}

func TestRead_MissingRequiredColumn(t *testing.T) {
	_, err := corpus.Read(strings.NewReader("id,name,instructions\n1,Margarita,Shake.\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `missing column "ingredients"`)
}

func TestRead_MissingID(t *testing.T) {
	csv := "id,name,instructions,ingredients\n,margarita,Shake.,\"['Tequila']\"\n"

	_, err := corpus.Read(strings.NewReader(csv))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing id or name")
}

func TestRead_EmptyBody(t *testing.T) {
	cocktails, err := corpus.Read(strings.NewReader("id,name,instructions,ingredients\n"))
	require.NoError(t, err)
	require.Empty(t, cocktails)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := corpus.ReadFile("testdata/does-not-exist.csv")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open corpus")
}
