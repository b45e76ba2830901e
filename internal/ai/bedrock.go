package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mailprism/mailprism/internal/taxonomy"
)

// BedrockClassifier implements Classifier over AWS Bedrock. All inference
// stays inside AWS; there is no retry logic here. A failed call surfaces as
// an error and the caller's deterministic result stands.
type BedrockClassifier struct {
	client  *bedrockruntime.Client
	modelID string
}

// bedrockMessage mirrors the Anthropic messages format Bedrock expects.
type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

type bedrockContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
	Temperature      float64          `json:"temperature"`
}

type bedrockResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewBedrockClassifier creates a Bedrock-backed classifier. Region comes from
// the default AWS config chain; modelID defaults to Claude 3 Haiku, which is
// plenty for a constrained-JSON labeling task.
func NewBedrockClassifier(ctx context.Context, region, modelID string) (*BedrockClassifier, error) {
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if modelID == "" {
		modelID = "anthropic.claude-3-haiku-20240307-v1:0"
	}

	b := &BedrockClassifier{
		client:  bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
	}
	log.Printf("BedrockClassifier: initialized with model=%s, region=%s", modelID, region)
	return b, nil
}

const systemPrompt = "You are a precise marketing-email classifier. Always respond with valid JSON only, no prose, no markdown."

// ClassifyBrand asks the model for an industry/subcategory/campaign label and
// validates every field before returning.
func (b *BedrockClassifier) ClassifyBrand(ctx context.Context, in BrandInput) (*BrandResult, error) {
	raw, err := b.invoke(ctx, brandPrompt(in))
	if err != nil {
		return nil, err
	}
	out := coerceBrandResult(*raw)
	return &out, nil
}

// ClassifyCampaign asks the model for a campaign-type label only.
func (b *BedrockClassifier) ClassifyCampaign(ctx context.Context, in CampaignInput) (*CampaignResult, error) {
	raw, err := b.invoke(ctx, campaignPrompt(in))
	if err != nil {
		return nil, err
	}
	out := coerceCampaignResult(*raw)
	return &out, nil
}

func (b *BedrockClassifier) invoke(ctx context.Context, prompt string) (*rawResult, error) {
	request := bedrockRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        200,
		System:           systemPrompt,
		Temperature:      0.1,
		Messages: []bedrockMessage{
			{Role: "user", Content: []bedrockContentBlock{{Type: "text", Text: prompt}}},
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	output, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: bedrock invoke: %v", ErrUnavailable, err)
	}

	var response bedrockResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return nil, fmt.Errorf("%w: parse response envelope: %v", ErrUnavailable, err)
	}

	var text string
	for _, c := range response.Content {
		if c.Type == "text" {
			text += c.Text
		}
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(stripFences(text)), &raw); err != nil {
		return nil, fmt.Errorf("%w: parse model JSON: %v", ErrUnavailable, err)
	}
	return &raw, nil
}

// stripFences removes a markdown code fence the model sometimes wraps its
// JSON in despite the system prompt.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.Index(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func brandPrompt(in BrandInput) string {
	var sb strings.Builder
	sb.WriteString("Classify this brand's industry, subcategory, and the email's campaign type.\n\n")
	fmt.Fprintf(&sb, "Brand: %s\n", in.Brand)
	if in.Subject != "" {
		fmt.Fprintf(&sb, "Email Subject: %s\n", in.Subject)
	}
	if in.Preview != "" {
		fmt.Fprintf(&sb, "Email Preview: %s\n", truncate(in.Preview, 500))
	}

	sb.WriteString("\nIndustries (choose exactly one):\n")
	for _, ind := range taxonomy.Industries() {
		fmt.Fprintf(&sb, "- %s: %s\n", ind, strings.Join(taxonomy.Subcategories(ind), ", "))
	}
	sb.WriteString("\nCampaign types (choose exactly one): ")
	for i, ct := range taxonomy.CampaignTypes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(ct))
	}
	sb.WriteString("\n\nGuidelines:\n")
	sb.WriteString("- Multi-category retailers (Amazon, Flipkart, Meesho) -> \"General / Department Store\"\n")
	sb.WriteString("- Athletic/sportswear brands -> \"Apparel & Accessories\" / \"Activewear / Athleisure\"\n")
	sb.WriteString("- Luxury houses -> \"Luxury & High-End Goods\" / \"Designer Fashion\"\n")
	sb.WriteString("- Jewelry brands -> \"Apparel & Accessories\" / \"Jewelry\"\n")
	sb.WriteString("- If unsure about subcategory, use \"Others\"; if unsure about campaign type, use \"Newsletter\".\n")
	sb.WriteString("\nRespond with ONLY this JSON shape:\n")
	sb.WriteString(`{"industry": "...", "subcategory": "...", "campaign_type": "...", "confidence": 0.95}`)
	sb.WriteString("\nConfidence is 0.5-1.0 based on how certain you are.")
	return sb.String()
}

func campaignPrompt(in CampaignInput) string {
	var sb strings.Builder
	sb.WriteString("Classify this marketing email's campaign type.\n\n")
	fmt.Fprintf(&sb, "Subject: %s\n", in.Subject)
	if in.Preview != "" {
		fmt.Fprintf(&sb, "Preview: %s\n", truncate(in.Preview, 300))
	}
	if in.Brand != "" {
		fmt.Fprintf(&sb, "Brand: %s\n", in.Brand)
	}
	sb.WriteString("\nChoose ONLY from: ")
	for i, ct := range taxonomy.CampaignTypes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(ct))
	}
	sb.WriteString("\n\nRespond with ONLY this JSON shape:\n")
	sb.WriteString(`{"campaign_type": "...", "confidence": 0.95}`)
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var _ Classifier = (*BedrockClassifier)(nil)
