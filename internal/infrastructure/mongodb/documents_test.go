package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/Vendas-api/internal/domain/repository"
)

func TestDecimal128_IdaYVuelta(t *testing.T) {
	for _, s := range []string{"0", "12.5", "1234.99", "-3.1"} {
		d := decimal.RequireFromString(s)
		assert.True(t, d.Equal(fromDecimal128(toDecimal128(d))), s)
	}
}

func TestOrderFilter_RangoDeFechas(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 31, 23, 59, 59, 0, time.UTC)

	got := orderFilter(repository.OrderFilter{EstablishmentID: "e1", Status: "s1", From: &from, To: &to})

	want := bson.D{
		{Key: "establishment_id", Value: "e1"},
		{Key: "status", Value: "s1"},
		{Key: "order_date", Value: bson.D{{Key: "$gte", Value: from}, {Key: "$lte", Value: to}}},
	}
	assert.Equal(t, want, got)
}

func TestOrderFilter_Vacio(t *testing.T) {
	assert.Empty(t, orderFilter(repository.OrderFilter{}))
}

func TestIndexModels_CodigoDeProductoUnico(t *testing.T) {
	models := indexModels()[CollectionProducts]
	require.Len(t, models, 1)
	m := models[0]
	assert.Equal(t, bson.D{{Key: "establishment_id", Value: 1}, {Key: "code", Value: 1}}, m.Keys)

	require.NotNil(t, m.Options)
	var opts options.IndexOptions
	for _, apply := range m.Options.Opts {
		require.NoError(t, apply(&opts))
	}
	require.NotNil(t, opts.Unique)
	assert.True(t, *opts.Unique)
	assert.Equal(t, bson.D{{Key: "code", Value: bson.D{{Key: "$gt", Value: ""}}}}, opts.PartialFilterExpression)
}
