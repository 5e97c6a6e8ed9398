package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/importer"
	"github.com/jhoicas/Vendas-api/internal/application/usecase"
	"github.com/jhoicas/Vendas-api/internal/domain"
	"github.com/jhoicas/Vendas-api/internal/domain/entity"
	"github.com/jhoicas/Vendas-api/internal/domain/repository"
	"github.com/jhoicas/Vendas-api/internal/infrastructure/memory"
	"github.com/jhoicas/Vendas-api/pkg/logger"
)

// ──── Helpers de test ────

const salesHeader = "Data/Hora;Cliente;Meios de Pagamento;Descri. itens;Total\n"

func newImporter(t *testing.T) (*importer.Importer, repository.Store, string) {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	store := memory.NewStore()
	_, err := usecase.NewLookupUseCase(store.PaymentMethods, store.Statuses).Seed(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Users.Create(ctx, &entity.User{ID: "cli-1", EstablishmentID: "est-1", Name: "Ana Lima", Email: "ana@x.com", Customer: true}))
	require.NoError(t, store.Products.Create(ctx, &entity.Product{ID: "p-1", EstablishmentID: "est-1", Name: "Coxinha", Value: decimal.NewFromInt(5), Code: "C1"}))
	require.NoError(t, store.Products.Create(ctx, &entity.Product{ID: "p-2", EstablishmentID: "est-1", Name: "Pão de Queijo", Value: decimal.NewFromInt(3), Code: "C2"}))

	im := importer.New(store, nil, nil, importer.Config{Dir: dir, Location: time.UTC}, logger.Nop())
	return im, store, dir
}

func writeFile(t *testing.T, dir string, kind importer.Kind, r dto.DateRange, content string) {
	t.Helper()
	sub := filepath.Join(dir, string(kind))
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, importer.FileName(kind, r)), []byte(content), 0o644))
}

func countOrders(t *testing.T, store repository.Store) int {
	t.Helper()
	orders, err := store.Orders.List(context.Background(), repository.OrderFilter{EstablishmentID: "est-1"})
	require.NoError(t, err)
	return len(orders)
}

// ──── Archivos ────

func TestImport_ArchivoInexistente(t *testing.T) {
	im, _, _ := newImporter(t)

	_, err := im.Import(context.Background(), "est-1", importer.KindSales, dto.DateRange{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	assert.ErrorIs(t, err, domain.ErrImportFileNotFound)
}

func TestKindForCategory(t *testing.T) {
	k, ok := importer.KindForCategory("Sale")
	assert.True(t, ok)
	assert.Equal(t, importer.KindSales, k)
	_, ok = importer.KindForCategory("Animal")
	assert.False(t, ok)
}

// ──── Ventas ────

func TestImportOrders_MismaFilaMismaFechaEsDuplicado(t *testing.T) {
	im, store, dir := newImporter(t)
	r := dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-31"}
	row := "05/03/2024 14:30;Ana Lima;Pix;2x Coxinha, 1x Pão de queijo;13,00\n"
	writeFile(t, dir, importer.KindSales, r, salesHeader+row+row)

	sum, err := im.Import(context.Background(), "est-1", importer.KindSales, r)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Rows)
	assert.Equal(t, 1, sum.Inserted)
	assert.Equal(t, 1, sum.Duplicates)

	again, err := im.Import(context.Background(), "est-1", importer.KindSales, r)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Inserted)
	assert.Equal(t, 1, countOrders(t, store))
}

func TestImportOrders_MismaCestaEnFechasDistintas(t *testing.T) {
	im, store, dir := newImporter(t)
	r := dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-31"}
	writeFile(t, dir, importer.KindSales, r, salesHeader+
		"05/03/2024 14:30;Ana Lima;Pix;2x Coxinha;10,00\n"+
		"06/03/2024 14:30;Ana Lima;Pix;2x Coxinha;10,00\n")

	sum, err := im.Import(context.Background(), "est-1", importer.KindSales, r)

	require.NoError(t, err)
	assert.Equal(t, 2, sum.Inserted)
	assert.Equal(t, 2, countOrders(t, store))
}

func TestImportOrders_OmiteSinClienteYDescartaProductoDesconocido(t *testing.T) {
	im, store, dir := newImporter(t)
	r := dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-31"}
	writeFile(t, dir, importer.KindSales, r, salesHeader+
		"05/03/2024 10:00;Desconhecido;Pix;1x Coxinha;5,00\n"+
		"05/03/2024 11:00;Ana Lima;Bitcoin;1x Coxinha;5,00\n"+
		"05/03/2024 12:00;ana lima;pix;1x Coxinha, 3x Empada;5,00\n")

	sum, err := im.Import(context.Background(), "est-1", importer.KindSales, r)

	require.NoError(t, err)
	assert.Equal(t, 2, sum.Skipped)
	assert.Equal(t, 1, sum.Inserted)
	orders, err := store.Orders.List(context.Background(), repository.OrderFilter{EstablishmentID: "est-1"})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []entity.OrderItem{{ProductID: "p-1", Quantity: 1}}, orders[0].Products)
	assert.NotEmpty(t, orders[0].Status)
}

// ──── Productos y clientes ────

func TestImportProducts_ActualizaSoloSiCambia(t *testing.T) {
	im, store, dir := newImporter(t)
	r := dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-02"}
	writeFile(t, dir, importer.KindProducts, r,
		"Nome;Preço de Venda;Preço de Custo;Categoria;Código\n"+
			"Coxinha;5,00;0;;C1\n"+
			"Pão de Queijo;3,50;1,00;Salgados;C2\n"+
			"Empada;6,00;2,00;Salgados;C3\n"+
			"Sem código;1,00;0;;\n")

	sum, err := im.Import(context.Background(), "est-1", importer.KindProducts, r)

	require.NoError(t, err)
	assert.Equal(t, dto.ImportSummary{File: "Products_2024-03-01_2024-03-02.csv", Rows: 4, Inserted: 1, Updated: 1, Unchanged: 1, Skipped: 1}, *sum)
	p, err := store.Products.GetByCode(context.Background(), "est-1", "C2")
	require.NoError(t, err)
	assert.Equal(t, "3.5", p.Value.String())
}

func TestImportCustomers_ConciliaPorEmail(t *testing.T) {
	im, store, dir := newImporter(t)
	r := dto.DateRange{StartDate: "2024-03-01", EndDate: "2024-03-02"}
	writeFile(t, dir, importer.KindCustomers, r,
		"Nome,Email,Telefone,Endereço,Complemento\n"+
			"Ana Lima,ana@x.com,5521987654321,\"Rua A, 1, Centro, Rio - RJ, 20000-000\",\n"+
			"Bruno,bruno@x.com,5511912345678,\"Av B, 20, Moema, São Paulo - SP, 04000-000\",casa\n"+
			"Carla,carla@x.com,123,\"Rua C, 3, Centro, Rio - RJ, 20000-000\",\n")

	sum, err := im.Import(context.Background(), "est-1", importer.KindCustomers, r)

	require.NoError(t, err)
	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, 1, sum.Inserted)
	assert.Equal(t, 1, sum.Skipped)
	ana, err := store.Users.GetByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "21", ana.Phone.AreaCode)
	bruno, err := store.Users.GetByEmail(context.Background(), "bruno@x.com")
	require.NoError(t, err)
	assert.True(t, bruno.Customer)
	assert.Equal(t, "est-1", bruno.EstablishmentID)
}
