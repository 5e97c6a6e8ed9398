package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/validation"
)

// ──── Helpers de test ────

func fixedValidator(t *testing.T) *validation.Validator {
	t.Helper()
	now := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	return validation.New(time.UTC).WithClock(func() time.Time { return now })
}

func validSignUp() dto.SignUpRequest {
	return dto.SignUpRequest{
		Name:  "Maria Souza",
		Email: "maria@example.com",
		Phone: dto.PhoneDTO{AreaCode: "21", Number: "987654321"},
		Address: dto.AddressDTO{
			ZipCode: "20000000", Street: "Rua A", District: "Centro",
			Number: 10, City: "Rio de Janeiro", State: "RJ",
		},
		Password:      "segredo123",
		Establishment: "Padaria",
	}
}

// ──── Sign-up / sign-in ────

func TestStruct_SignUpValido(t *testing.T) {
	res := fixedValidator(t).Struct(validSignUp())
	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
}

func TestStruct_SignUpCamposAnidados(t *testing.T) {
	in := validSignUp()
	in.Phone.AreaCode = "021"
	in.Address.State = "RJX"
	in.Password = "curta"

	res := fixedValidator(t).Struct(in)

	require.False(t, res.Success)
	assert.Equal(t, []string{"The phone.area code must be 2 characters."}, res.Errors["phone.area_code"])
	assert.Equal(t, []string{"The address.state may not be greater than 2 characters."}, res.Errors["address.state"])
	assert.Equal(t, []string{"The password must be at least 8 characters."}, res.Errors["password"])
}

func TestStruct_SignInRequeridos(t *testing.T) {
	res := fixedValidator(t).Struct(dto.SignInRequest{Email: "no-es-email"})

	require.False(t, res.Success)
	assert.Equal(t, []string{"The email format is invalid."}, res.Errors["email"])
	assert.Equal(t, []string{"The password field is required."}, res.Errors["password"])
}

// ──── Rango de fechas ────

func TestStruct_RangoValido(t *testing.T) {
	res := fixedValidator(t).Struct(dto.DateRange{StartDate: "2024-05-01", EndDate: "2024-05-20"})
	assert.True(t, res.Success)
}

func TestStruct_RangoInvertido(t *testing.T) {
	res := fixedValidator(t).Struct(dto.DateRange{StartDate: "2024-05-10", EndDate: "2024-05-01"})

	require.False(t, res.Success)
	assert.Equal(t, []string{"The end date must be equal or after start_date."}, res.Errors["end_date"])
}

func TestStruct_FechaFutura(t *testing.T) {
	res := fixedValidator(t).Struct(dto.DateRange{StartDate: "2024-05-01", EndDate: "2024-05-21"})

	require.False(t, res.Success)
	assert.Equal(t, []string{"The informed end date can't be after today's date"}, res.Errors["end_date"])
}

func TestStruct_FormatoDeFechaInvalido(t *testing.T) {
	res := fixedValidator(t).Struct(dto.DateRange{StartDate: "01/05/2024", EndDate: "2024-05-02"})

	require.False(t, res.Success)
	assert.Equal(t, []string{"The start date is not a valid date format."}, res.Errors["start_date"])
}

func TestStruct_ImportCategoriaInvalida(t *testing.T) {
	res := fixedValidator(t).Struct(dto.ImportRequest{StartDate: "2024-05-01", EndDate: "2024-05-02", Category: "Animal"})

	require.False(t, res.Success)
	assert.Equal(t, []string{"The informed category is not a valid option [Customer, Product, Sale]"}, res.Errors["category"])
}

func TestStruct_ImportCategoriaAceptada(t *testing.T) {
	for _, c := range validation.Categories {
		res := fixedValidator(t).Struct(dto.ImportRequest{StartDate: "2024-05-01", EndDate: "2024-05-02", Category: c})
		assert.True(t, res.Success, c)
	}
}

func TestParseRange_CubreDiaCompleto(t *testing.T) {
	from, to, err := validation.ParseRange(dto.DateRange{StartDate: "2024-05-01", EndDate: "2024-05-02"}, time.UTC)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 2, 23, 59, 59, 0, time.UTC), to)
}
