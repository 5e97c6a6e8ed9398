package importer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/Vendas-api/internal/domain/entity"
)

func TestParsePhone(t *testing.T) {
	p, err := ParsePhone("5521987654321")
	require.NoError(t, err)
	assert.Equal(t, entity.Phone{AreaCode: "21", Number: "987654321"}, p)

	for _, bad := range []string{"", "552198765432", "55219876543210", "55 21987654321", "55a1987654321"} {
		_, err := ParsePhone(bad)
		assert.ErrorIs(t, err, ErrInvalidRecord, bad)
	}
}

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress("Rua das Laranjeiras, 120, Laranjeiras, Rio de Janeiro - RJ, 22240-003, Brasil", "apto 301")

	require.NoError(t, err)
	assert.Equal(t, entity.Address{
		Street: "Rua das Laranjeiras", Number: 120, District: "Laranjeiras",
		City: "Rio de Janeiro", State: "RJ", ZipCode: "22240003", Complement: "apto 301",
	}, a)

	_, err = ParseAddress("Rua sem número, Centro", "")
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParseUser_DescartaTelefonoInvalido(t *testing.T) {
	row := Row{
		ColName:    "João",
		ColEmail:   "joao@example.com",
		ColPhone:   "21987654321",
		ColAddress: "Rua A, 1, Centro, Niterói - RJ, 24000-000",
	}

	_, err := ParseUser(row)
	assert.ErrorIs(t, err, ErrInvalidRecord)

	row[ColPhone] = "5521987654321"
	u, err := ParseUser(row)
	require.NoError(t, err)
	assert.True(t, u.Customer)
	assert.Equal(t, "Niterói", u.Address.City)
}

func TestParseProduct(t *testing.T) {
	p, err := ParseProduct(Row{ColName: "Coxinha", ColSalePrice: "R$ 1.234,50", ColCostPrice: "2,00", ColCategory: "Salgados", ColCode: "C1"})

	require.NoError(t, err)
	assert.Equal(t, "1234.5", p.Value.String())
	assert.Equal(t, "2", p.Cost.String())
	assert.Equal(t, "C1", p.Code)
}

func TestParseItems(t *testing.T) {
	got := ParseItems("2x Coxinha, 1 x Pão de queijo, lixo, 0x Nada")

	assert.Equal(t, []RawItem{{Name: "Coxinha", Quantity: 2}, {Name: "Pão de queijo", Quantity: 1}}, got)
}

func TestParseOrder_FechaEnZonaLocal(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	o, err := ParseOrder(Row{
		ColPaymentMethod: "Pix", ColCustomer: "Ana", ColTotal: "12,50",
		ColItems: "1x Coxinha", ColDateTime: "05/03/2024 14:30",
	}, loc)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 17, 30, 0, 0, time.UTC), o.OrderDate.UTC())
	assert.Equal(t, "12.5", o.Value.String())

	_, err = ParseOrder(Row{ColPaymentMethod: "Pix", ColTotal: "1"}, loc)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestParseOrder_RedondeaACentavos(t *testing.T) {
	o, err := ParseOrder(Row{
		ColPaymentMethod: "Pix", ColCustomer: "Ana", ColTotal: "R$ 10,125",
		ColItems: "1x Coxinha", ColDateTime: "05/03/2024 14:30",
	}, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, "10.13", o.Value.String())
}

func TestParseProduct_RedondeaACentavos(t *testing.T) {
	p, err := ParseProduct(Row{ColName: "Coxinha", ColSalePrice: "5,999", ColCostPrice: "2,001", ColCode: "C1"})

	require.NoError(t, err)
	assert.Equal(t, "6", p.Value.String())
	assert.Equal(t, "2", p.Cost.String())
}

func TestReadRows_PuntoYComaYLatin1(t *testing.T) {
	text := "Nome;Preço de Venda;Código\nPão;3,50;P1\n;;\n"
	encoded, err := charmap.Windows1252.NewEncoder().String(text)
	require.NoError(t, err)

	rows, err := ReadRows(bytes.NewReader([]byte(encoded)))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pão", rows[0].Get(ColName))
	assert.Equal(t, "3,50", rows[0].Get(ColSalePrice))
}

func TestReadRows_UTF8ConBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Nome,Email\nAna,ana@example.com\n")...)

	rows, err := ReadRows(bytes.NewReader(data))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].Get(ColName))
}

func TestFoldName(t *testing.T) {
	assert.Equal(t, foldName("Cartão  de Crédito"), foldName("cartao de credito"))
}
