package client

import "context"

// Ask answers a free-form question grounded in the product catalog.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body := map[string]string{"question": question}
	var out answerPayload
	err := c.post(ctx, "/api/v1/assistant/query", body, &out)
	return out.Answer, err
}

// RecommendWithExplanation returns a written recommendation with reasoning
// for the query and preferences.
func (c *Client) RecommendWithExplanation(ctx context.Context, query, preferences string) (string, error) {
	body := map[string]string{"query": query, "preferences": preferences}
	var out answerPayload
	err := c.post(ctx, "/api/v1/assistant/recommend", body, &out)
	return out.Answer, err
}

// CompareProducts returns a written comparison of the given products.
func (c *Client) CompareProducts(ctx context.Context, productIDs []int64) (string, error) {
	body := map[string][]int64{"product_ids": productIDs}
	var out answerPayload
	err := c.post(ctx, "/api/v1/assistant/compare", body, &out)
	return out.Answer, err
}

// ProductFAQ answers a question about one specific product.
func (c *Client) ProductFAQ(ctx context.Context, productID int64, question string) (string, error) {
	body := map[string]any{"product_id": productID, "question": question}
	var out answerPayload
	err := c.post(ctx, "/api/v1/assistant/faq", body, &out)
	return out.Answer, err
}

// ShoppingSuggestions returns gift and shopping ideas for a user profile
// and occasion.
func (c *Client) ShoppingSuggestions(ctx context.Context, userProfile, occasion string) (string, error) {
	body := map[string]string{"user_profile": userProfile, "occasion": occasion}
	var out answerPayload
	err := c.post(ctx, "/api/v1/assistant/suggestions", body, &out)
	return out.Answer, err
}
