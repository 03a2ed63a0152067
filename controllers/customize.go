package controllers

import (
	"errors"

	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/dto"
	"github.com/woodendoors/doorshowcase/models"
	"github.com/woodendoors/doorshowcase/pricing"
	"github.com/woodendoors/doorshowcase/session"
)

var errProductNotFound = errors.New("product not found")

// sessionFromInput opens a fresh configurator session for the selection.
func sessionFromInput(products catalog.Products, options catalog.Options, engine *pricing.Engine, body dto.CustomizationInputDTO) (*session.Session, error) {
	p, ok := products.ByID(body.ProductID)
	if !ok {
		return nil, errProductNotFound
	}
	sess, err := session.New(p, options, engine)
	if err != nil {
		return nil, err
	}
	if err := applyInput(sess, body); err != nil {
		return nil, err
	}
	return sess, nil
}

// sessionFromEdit reopens the configurator on a prior cart line.
func sessionFromEdit(products catalog.Products, options catalog.Options, engine *pricing.Engine, prior models.ProductCustomization, editIndex int, body dto.CustomizationInputDTO) (*session.Session, error) {
	p, ok := products.ByID(body.ProductID)
	if !ok {
		return nil, errProductNotFound
	}
	sess, err := session.Resume(p, prior, editIndex, options, engine)
	if err != nil {
		return nil, err
	}
	if err := applyInput(sess, body); err != nil {
		return nil, err
	}
	return sess, nil
}

func applyInput(sess *session.Session, body dto.CustomizationInputDTO) error {
	if body.MaterialType != "" {
		if err := sess.SelectOption(models.OptionMaterial, body.MaterialType); err != nil {
			return err
		}
	}
	if body.ColorFinish != "" {
		if err := sess.SelectOption(models.OptionFinish, body.ColorFinish); err != nil {
			return err
		}
	}
	if body.GlassPanel != "" {
		if err := sess.SelectOption(models.OptionGlass, body.GlassPanel); err != nil {
			return err
		}
	}
	if body.Dimensions == nil {
		return nil
	}
	if err := sess.SetCustomSize(body.Dimensions.IsCustom); err != nil {
		return err
	}
	if !body.Dimensions.IsCustom {
		return nil
	}
	if body.Dimensions.Width > 0 {
		if err := sess.SetWidth(body.Dimensions.Width); err != nil {
			return err
		}
	}
	if body.Dimensions.Height > 0 {
		if err := sess.SetHeight(body.Dimensions.Height); err != nil {
			return err
		}
	}
	return nil
}
