package repository

import (
	"context"
	"strconv"
	"time"

	"quoteforge/internal/domain/entities"
	"quoteforge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Total       string `dynamodbav:"total"`
}

type quoteRecommendationItem struct {
	MinPrice   string `dynamodbav:"min_price"`
	MaxPrice   string `dynamodbav:"max_price"`
	Confidence string `dynamodbav:"confidence"`
	Rationale  string `dynamodbav:"rationale"`
}

type quoteItem struct {
	ID              string                   `dynamodbav:"id"`
	Industry        string                   `dynamodbav:"industry"`
	Location        string                   `dynamodbav:"location"`
	ExperienceLevel string                   `dynamodbav:"experience_level"`
	Complexity      string                   `dynamodbav:"complexity"`
	DurationHours   string                   `dynamodbav:"duration_hours"`
	JobTitle        string                   `dynamodbav:"job_title"`
	ClientName      string                   `dynamodbav:"client_name"`
	ClientCompany   string                   `dynamodbav:"client_company,omitempty"`
	ClientEmail     string                   `dynamodbav:"client_email,omitempty"`
	ClientPhone     string                   `dynamodbav:"client_phone,omitempty"`
	ClientAddress   string                   `dynamodbav:"client_address,omitempty"`
	Items           []quoteLineItem          `dynamodbav:"items"`
	Terms           string                   `dynamodbav:"terms,omitempty"`
	ValidityDays    int                      `dynamodbav:"validity_days"`
	Recommendation  *quoteRecommendationItem `dynamodbav:"recommendation,omitempty"`
	GrandTotal      string                   `dynamodbav:"grand_total"`
	Status          string                   `dynamodbav:"status"`
	CreatedAt       string                   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists submitted quotes in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Client fields are flattened to top-level attributes so the client-name
// listing can run as a filtered scan without unwrapping a nested map.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByClientName(ctx context.Context, clientName string) ([]entities.Quote, error) {
	// Quotes are few per client; a filtered scan keeps the table schema to a
	// single PK. Revisit with a client_name GSI if listing gets hot.
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#client_name = :client_name"),
			ExpressionAttributeNames: map[string]string{
				"#client_name": "client_name",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":client_name": &types.AttributeValueMemberS{Value: clientName},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	items := make([]quoteLineItem, 0, len(q.Items))
	for _, li := range q.Items {
		items = append(items, quoteLineItem{
			Description: li.Description,
			Quantity:    floatToString(li.Quantity),
			UnitPrice:   floatToString(li.UnitPrice),
			Total:       floatToString(li.Total),
		})
	}

	var rec *quoteRecommendationItem
	if q.Recommendation != nil {
		rec = &quoteRecommendationItem{
			MinPrice:   floatToString(q.Recommendation.MinPrice),
			MaxPrice:   floatToString(q.Recommendation.MaxPrice),
			Confidence: floatToString(q.Recommendation.Confidence),
			Rationale:  q.Recommendation.Rationale,
		}
	}

	return quoteItem{
		ID:              q.ID,
		Industry:        string(q.Features.Industry),
		Location:        string(q.Features.Location),
		ExperienceLevel: string(q.Features.ExperienceLevel),
		Complexity:      string(q.Features.Complexity),
		DurationHours:   floatToString(q.Features.DurationHours),
		JobTitle:        q.Features.JobTitle,
		ClientName:      q.Client.Name,
		ClientCompany:   q.Client.Company,
		ClientEmail:     q.Client.Email,
		ClientPhone:     q.Client.Phone,
		ClientAddress:   q.Client.Address,
		Items:           items,
		Terms:           q.Terms,
		ValidityDays:    q.ValidityDays,
		Recommendation:  rec,
		GrandTotal:      floatToString(q.GrandTotal),
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	durationHours, _ := strconv.ParseFloat(it.DurationHours, 64)
	grandTotal, _ := strconv.ParseFloat(it.GrandTotal, 64)

	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		quantity, _ := strconv.ParseFloat(li.Quantity, 64)
		unitPrice, _ := strconv.ParseFloat(li.UnitPrice, 64)
		total, _ := strconv.ParseFloat(li.Total, 64)
		items = append(items, entities.LineItem{
			Description: li.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       total,
		})
	}

	var rec *entities.PricingRecommendation
	if it.Recommendation != nil {
		minPrice, _ := strconv.ParseFloat(it.Recommendation.MinPrice, 64)
		maxPrice, _ := strconv.ParseFloat(it.Recommendation.MaxPrice, 64)
		confidence, _ := strconv.ParseFloat(it.Recommendation.Confidence, 64)
		rec = &entities.PricingRecommendation{
			MinPrice:   minPrice,
			MaxPrice:   maxPrice,
			Confidence: confidence,
			Rationale:  it.Recommendation.Rationale,
		}
	}

	return entities.Quote{
		ID: it.ID,
		Features: entities.FeatureSet{
			Industry:        entities.Industry(it.Industry),
			Location:        entities.Location(it.Location),
			ExperienceLevel: entities.ExperienceLevel(it.ExperienceLevel),
			Complexity:      entities.Complexity(it.Complexity),
			DurationHours:   durationHours,
			JobTitle:        it.JobTitle,
		},
		Client: entities.ClientInfo{
			Name:    it.ClientName,
			Company: it.ClientCompany,
			Email:   it.ClientEmail,
			Phone:   it.ClientPhone,
			Address: it.ClientAddress,
		},
		Items:          items,
		Terms:          it.Terms,
		ValidityDays:   it.ValidityDays,
		Recommendation: rec,
		GrandTotal:     grandTotal,
		Status:         entities.QuoteStatus(it.Status),
		CreatedAt:      createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
