package unique

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-race-nft/internal/domain"
)

const (
	SCHEMA_NAME                = "unique"
	SCHEMA_VERSION             = "1.0.0"
	ATTRIBUTES_SCHEMA_VERSION  = "1.0.0"
	RACE_OBJECT_TYPE           = "postRace"
	RACE_ACHIEVEMENT_OBJECT    = "postAchievement"
	ACHIEVEMENT_OBJECT_TYPE    = "achievement"
	IMAGE_URL_TEMPLATE_POSTFIX = "/ipfs/{infix}"
)

type schemaField struct {
	Type  string       `json:"type"`
	Items *schemaField `json:"items,omitempty"`
}

type objectType struct {
	Type       string                 `json:"type"`
	Required   []string               `json:"required"`
	Properties map[string]schemaField `json:"properties"`
}

type imageTemplate struct {
	URLTemplate string `json:"urlTemplate"`
}

type collectionSchema struct {
	SchemaName              string                `json:"schemaName"`
	SchemaVersion           string                `json:"schemaVersion"`
	Image                   imageTemplate         `json:"image"`
	CoverPicture            coverImage            `json:"coverPicture"`
	AttributesSchemaVersion string                `json:"attributesSchemaVersion"`
	AttributesSchema        map[string]objectType `json:"attributesSchema"`
}

var (
	integerField = schemaField{Type: "integer"}
	stringField  = schemaField{Type: "string"}

	raceObject = objectType{
		Type: "object",
		Required: []string{
			"score", "fastestLap", "lapTimes", "topSpeed", "averageSpeed",
			"crashes", "totalRaceTime", "carType", "playerCount",
		},
		Properties: map[string]schemaField{
			"score":         integerField,
			"fastestLap":    integerField,
			"lapTimes":      {Type: "array", Items: &integerField},
			"topSpeed":      integerField,
			"averageSpeed":  integerField,
			"crashes":       integerField,
			"totalRaceTime": integerField,
			"carType":       integerField,
			"playerCount":   integerField,
		},
	}

	achievementObject = objectType{
		Type:     "object",
		Required: []string{"title", "description", "points"},
		Properties: map[string]schemaField{
			"title":       stringField,
			"description": stringField,
			"points":      integerField,
		},
	}

	adminOnlyMutable = propertyPermission{Mutable: true, CollectionAdmin: true, TokenOwner: false}
)

// attributeObjects returns the attribute schema object types of a collection kind
func attributeObjects(kind domain.CollectionKind) (map[string]objectType, error) {
	switch kind {
	case domain.CollectionKindRace:
		return map[string]objectType{
			RACE_OBJECT_TYPE:        raceObject,
			RACE_ACHIEVEMENT_OBJECT: achievementObject,
		}, nil
	case domain.CollectionKindAchievement:
		return map[string]objectType{
			ACHIEVEMENT_OBJECT_TYPE: achievementObject,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCollectionKind, kind)
	}
}

// buildCollectionBody assembles the create-collection request for a collection kind
func buildCollectionBody(kind domain.CollectionKind, signer string, gateway string, req CollectionRequest) (*createCollectionBody, error) {
	objects, err := attributeObjects(kind)
	if err != nil {
		return nil, err
	}

	tpps := make([]tokenPropertyPermission, 0, len(objects))
	// keep the permission order stable
	for _, key := range []string{RACE_OBJECT_TYPE, RACE_ACHIEVEMENT_OBJECT, ACHIEVEMENT_OBJECT_TYPE} {
		if _, ok := objects[key]; ok {
			tpps = append(tpps, tokenPropertyPermission{Key: key, Permission: adminOnlyMutable})
		}
	}

	return &createCollectionBody{
		Address:     signer,
		Name:        req.Name,
		Description: req.Description,
		Symbol:      req.Symbol,
		CoverImage:  coverImage{URL: req.CoverImageURL},
		Permissions: collectionPermissions{Nesting: nestingPermissions{CollectionAdmin: true}},
		EncodeOptions: encodeOptions{
			OverwriteTPPs: []tokenPropertyPermission{
				{Key: domain.TOKEN_DATA_PROPERTY_KEY, Permission: adminOnlyMutable},
			},
		},
		Schema: collectionSchema{
			SchemaName:              SCHEMA_NAME,
			SchemaVersion:           SCHEMA_VERSION,
			Image:                   imageTemplate{URLTemplate: strings.TrimRight(gateway, "/") + IMAGE_URL_TEMPLATE_POSTFIX},
			CoverPicture:            coverImage{URL: req.CoverImageURL},
			AttributesSchemaVersion: ATTRIBUTES_SCHEMA_VERSION,
			AttributesSchema:        objects,
		},
		TokenPropertyPermissions: tpps,
	}, nil
}
