package core

type Metadata struct {
	Title       string
	Description string
}

var DefaultMetadata = Metadata{
	Title:       "LumaStay Concierge AI | Hospitality Employee Assistant",
	Description: "LumaStay Hospitality equips every associate with an AI concierge inside Salesforce to deliver unforgettable guest experiences.",
}
