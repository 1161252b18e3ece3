//go:build unit

package customer_test

import (
	"testing"

	"hotel-registry/internal/domain/customer"
	"hotel-registry/internal/pkg/errs"
	"hotel-registry/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CustomerBuilder)
	errIs  error
}

func TestCustomer(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "1234", actual.ID().String())
		assert.Equal(t, "Ana Lopez", actual.Name().String())
		assert.Equal(t, "ana.lopez@example.com", actual.Email().String())
		assert.Equal(t, "6641234567", actual.Phone().String())
	})

	t.Run("id validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "four digits", mutate: func(b *builder.CustomerBuilder) { b.ID = "0001" }},
			{name: "empty", mutate: func(b *builder.CustomerBuilder) { b.ID = "" }, errIs: customer.ErrIDEmpty},
			{name: "whitespace only", mutate: func(b *builder.CustomerBuilder) { b.ID = "    " }, errIs: customer.ErrIDEmpty},
			{name: "three digits", mutate: func(b *builder.CustomerBuilder) { b.ID = "400" }, errIs: customer.ErrIDInvalid},
			{name: "five digits", mutate: func(b *builder.CustomerBuilder) { b.ID = "12345" }, errIs: customer.ErrIDInvalid},
			{name: "letters", mutate: func(b *builder.CustomerBuilder) { b.ID = "12a4" }, errIs: customer.ErrIDInvalid},
			{name: "non-ascii digits", mutate: func(b *builder.CustomerBuilder) { b.ID = "١٢٣٤" }, errIs: customer.ErrIDInvalid},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "apostrophe", mutate: func(b *builder.CustomerBuilder) { b.Name = "Sinead O'Connor" }},
			{name: "empty", mutate: func(b *builder.CustomerBuilder) { b.Name = "" }, errIs: customer.ErrNameEmpty},
			{name: "whitespace only", mutate: func(b *builder.CustomerBuilder) { b.Name = "  " }, errIs: customer.ErrNameEmpty},
			{name: "digits", mutate: func(b *builder.CustomerBuilder) { b.Name = "Ana 2" }, errIs: customer.ErrNameInvalid},
			{name: "hyphen", mutate: func(b *builder.CustomerBuilder) { b.Name = "Ana-Maria" }, errIs: customer.ErrNameInvalid},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "plus tag", mutate: func(b *builder.CustomerBuilder) { b.Email = "ana+desk@mail.example.mx" }},
			{name: "empty", mutate: func(b *builder.CustomerBuilder) { b.Email = "" }, errIs: customer.ErrEmailEmpty},
			{name: "no tld", mutate: func(b *builder.CustomerBuilder) { b.Email = "a@b" }, errIs: customer.ErrEmailInvalid},
			{name: "no at sign", mutate: func(b *builder.CustomerBuilder) { b.Email = "ana.example.com" }, errIs: customer.ErrEmailInvalid},
			{name: "one letter tld", mutate: func(b *builder.CustomerBuilder) { b.Email = "ana@example.c" }, errIs: customer.ErrEmailInvalid},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty", mutate: func(b *builder.CustomerBuilder) { b.Phone = "" }, errIs: customer.ErrPhoneEmpty},
			{name: "too short", mutate: func(b *builder.CustomerBuilder) { b.Phone = "660" }, errIs: customer.ErrPhoneInvalid},
			{name: "too long", mutate: func(b *builder.CustomerBuilder) { b.Phone = "66412345678" }, errIs: customer.ErrPhoneInvalid},
			{name: "formatted", mutate: func(b *builder.CustomerBuilder) { b.Phone = "664-123-45" }, errIs: customer.ErrPhoneInvalid},
		})
	})

	t.Run("validation errors carry their kind", func(t *testing.T) {
		_, err := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.ID = "400" }).BuildDomain()
		require.Error(t, err)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})
}

func TestCustomerMutations(t *testing.T) {
	newCustomer := func(t *testing.T) *customer.Customer {
		t.Helper()
		c, err := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, err)
		return c
	}

	t.Run("rename applies a different name", func(t *testing.T) {
		c := newCustomer(t)
		name, err := customer.NewName("Ana Maria Lopez")
		require.NoError(t, err)

		require.NoError(t, c.Rename(name))
		assert.Equal(t, "Ana Maria Lopez", c.Name().String())
	})

	t.Run("unchanged values are rejected as no-ops", func(t *testing.T) {
		c := newCustomer(t)

		err := c.Rename(c.Name())
		require.ErrorIs(t, err, customer.ErrNameUnchanged)
		assert.Equal(t, errs.KindNoOp, errs.KindOf(err))

		require.ErrorIs(t, c.ChangeEmail(c.Email()), customer.ErrEmailUnchanged)
		require.ErrorIs(t, c.ChangePhone(c.Phone()), customer.ErrPhoneUnchanged)
	})

	t.Run("email and phone change independently", func(t *testing.T) {
		c := newCustomer(t)
		email, err := customer.NewEmail("frontdesk@example.org")
		require.NoError(t, err)

		require.NoError(t, c.ChangeEmail(email))
		assert.Equal(t, "frontdesk@example.org", c.Email().String())
		assert.Equal(t, "6641234567", c.Phone().String())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCustomerBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
