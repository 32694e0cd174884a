package storage

// Submission is one proposed team name. Rows are append-only: nothing updates
// or deletes a single submission once written.
type Submission struct {
	Name      string `csv:"Name" dynamodbav:"Name" json:"name"`
	Tag       string `csv:"Tag" dynamodbav:"Tag" json:"tag"`
	Timestamp string `csv:"Timestamp" dynamodbav:"Timestamp" json:"timestamp"`
}

// Vote is a single cast vote. It carries no identity beyond insertion order.
type Vote struct {
	Name string `csv:"Name" dynamodbav:"Name" json:"name"`
}
