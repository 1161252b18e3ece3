package customer

type Customer struct {
	id    ID
	name  Name
	email Email
	phone Phone
}

func NewCustomer(id ID, name Name, email Email, phone Phone) *Customer {
	return &Customer{
		id:    id,
		name:  name,
		email: email,
		phone: phone,
	}
}

func (c *Customer) Rename(name Name) error {
	if c.name == name {
		return ErrNameUnchanged
	}
	c.name = name
	return nil
}

func (c *Customer) ChangeEmail(email Email) error {
	if c.email == email {
		return ErrEmailUnchanged
	}
	c.email = email
	return nil
}

func (c *Customer) ChangePhone(phone Phone) error {
	if c.phone == phone {
		return ErrPhoneUnchanged
	}
	c.phone = phone
	return nil
}

func (c *Customer) ID() ID       { return c.id }
func (c *Customer) Name() Name   { return c.name }
func (c *Customer) Email() Email { return c.email }
func (c *Customer) Phone() Phone { return c.phone }
