// Package client provides a Go client for the product recommender HTTP API.
//
// Basic usage:
//
//	c, err := client.New("http://localhost:8080",
//		client.WithAPIKey("secret"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	similar, err := c.Similar(ctx, 42, 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range similar {
//		fmt.Println(p.Name, p.Price)
//	}
//
// All methods take a context and return typed results or an *APIError
// describing the server response. Not-found responses additionally match
// errors.Is(err, client.ErrNotFound).
package client
