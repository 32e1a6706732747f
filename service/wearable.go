package service

import (
	"fmt"
	"strings"

	"marketscan/common/model"
)

// wearableSpec catalog entry for one wearable representation
type wearableSpec struct {
	Collection string //collection tag, part of the metadata path
	Category   string //avatar slot
	Rarity     string
	BodyShapes string //comma separated
}

// wearableCatalog known representations keyed by representation id. The
// representation id is the second to last segment of the tokenURI.
var wearableCatalog = map[string]wearableSpec{
	// exclusive_masks
	"asian_fox":          {"exclusive_masks", "mask", "mythic", "BaseMale,BaseFemale"},
	"killer_mask":        {"exclusive_masks", "mask", "mythic", "BaseMale,BaseFemale"},
	"serial_killer_mask": {"exclusive_masks", "mask", "mythic", "BaseMale,BaseFemale"},
	"theater_mask":       {"exclusive_masks", "mask", "mythic", "BaseMale,BaseFemale"},
	"tropical_mask":      {"exclusive_masks", "mask", "mythic", "BaseMale,BaseFemale"},
	// halloween_2019
	"funny_skull_mask":      {"halloween_2019", "mask", "epic", "BaseMale,BaseFemale"},
	"creepy_nose":           {"halloween_2019", "mask", "epic", "BaseMale,BaseFemale"},
	"vampire_teeth":         {"halloween_2019", "mask", "epic", "BaseMale,BaseFemale"},
	"bloody_knife_headband": {"halloween_2019", "hat", "epic", "BaseMale,BaseFemale"},
	"classic_top_hat":       {"halloween_2019", "hat", "epic", "BaseMale,BaseFemale"},
	"creepy_pumpkin_helmet": {"halloween_2019", "helmet", "legendary", "BaseMale,BaseFemale"},
	"frankenstein_mask":     {"halloween_2019", "mask", "legendary", "BaseMale,BaseFemale"},
	"zombie_suit_upper_body": {"halloween_2019", "upper_body", "epic", "BaseMale,BaseFemale"},
	// xmas_2019
	"xmas_ball_earring": {"xmas_2019", "earring", "epic", "BaseFemale"},
	"xmas_light_ball":   {"xmas_2019", "earring", "epic", "BaseMale,BaseFemale"},
	"santa_xmas_hat":    {"xmas_2019", "hat", "uncommon", "BaseMale,BaseFemale"},
	"reindeer_antlers":  {"xmas_2019", "tiara", "epic", "BaseMale,BaseFemale"},
	// mch_collection
	"mch_enemy_helmet": {"mch_collection", "helmet", "mythic", "BaseMale,BaseFemale"},
	"mch_hero_upper_body": {"mch_collection", "upper_body", "mythic", "BaseMale,BaseFemale"},
	// dcl_launch
	"launch_tshirt": {"dcl_launch", "upper_body", "mythic", "BaseMale,BaseFemale"},
	"dcl_hat":       {"dcl_launch", "hat", "mythic", "BaseMale,BaseFemale"},
	// stay_safe
	"protection_mask_funny": {"stay_safe", "mask", "epic", "BaseMale,BaseFemale"},
	"protection_mask_hot":   {"stay_safe", "mask", "epic", "BaseMale,BaseFemale"},
}

// head slots cover or replace the head of the avatar
var wearableHeadCategories = map[string]bool{
	"earring": true, "eyewear": true, "facial_hair": true, "hair": true,
	"hat": true, "helmet": true, "mask": true, "tiara": true, "top_head": true,
}

// accessory slots decorate without replacing body parts
var wearableAccessoryCategories = map[string]bool{
	"earring": true, "eyewear": true, "hat": true, "helmet": true,
	"mask": true, "tiara": true, "top_head": true,
}

// buildWearable derives the wearable from the NFT's tokenURI. Nil when the
// URI carries no representation or the representation is not in the catalog.
func buildWearable(nft *model.NFT) *model.Wearable {
	representation := wearableRepresentation(nft)
	if representation == "" {
		return nil
	}
	spec, ok := wearableCatalog[representation]
	if !ok {
		return nil
	}
	return &model.Wearable{
		ID:             nft.ID,
		Representation: representation,
		Name:           strings.ReplaceAll(representation, "_", " "),
		Category:       spec.Category,
		Rarity:         spec.Rarity,
		BodyShapes:     spec.BodyShapes,
		Owner:          nft.Owner,
	}
}

// wearableRepresentation extracts the representation id from a metadata URI
// of the form .../collections/<collection>/wearables/<representation>/<issue>
func wearableRepresentation(nft *model.NFT) string {
	if nft.TokenURI == nil {
		return ""
	}
	parts := strings.Split(*nft.TokenURI, "/")
	for i := 0; i+1 < len(parts); i++ {
		if parts[i] == "wearables" {
			return parts[i+1]
		}
	}
	return ""
}

func wearableImage(w *model.Wearable) string {
	collection := wearableCatalog[w.Representation].Collection
	return fmt.Sprintf("https://wearable-api.decentraland.org/v2/collections/%s/wearables/%s/image", collection, w.Representation)
}

func isWearableHead(category string) bool {
	return wearableHeadCategories[category]
}

func isWearableAccessory(category string) bool {
	return wearableAccessoryCategories[category]
}
