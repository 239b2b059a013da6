package reservation

// Client is immutable once created.
type Client struct {
	firstName   string
	lastName    string
	email       string
	phoneNumber string
}

func NewClient(firstName, lastName, email, phoneNumber string) *Client {
	return &Client{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phoneNumber: phoneNumber,
	}
}

func (c *Client) FirstName() string {
	return c.firstName
}

func (c *Client) LastName() string {
	return c.lastName
}

func (c *Client) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) PhoneNumber() string {
	return c.phoneNumber
}
