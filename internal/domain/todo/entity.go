package todo

// Entity is an identified todo item.
//
// ID is assigned by the store at creation time and never reassigned.
// Title is immutable after creation, Completed is flipped by toggling.
type Entity struct {
	ID        string `json:"id" description:"Opaque unique identifier."`
	Title     string `json:"title" minLength:"1" required:"true"`
	Completed bool   `json:"completed"`
}
