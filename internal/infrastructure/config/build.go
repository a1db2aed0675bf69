package config

import (
	"fmt"

	"github.com/younwookim/rg/internal/ecs"
)

var groupNames = map[string]ecs.GroupID{
	"none":        ecs.GroupNone,
	"player":      ecs.GroupPlayer,
	"enemy":       ecs.GroupEnemy,
	"player_shot": ecs.GroupPlayerShot,
	"enemy_shot":  ecs.GroupEnemyShot,
	"pickup":      ecs.GroupPickup,
}

func groupByName(name string) (ecs.GroupID, error) {
	if name == "" {
		return ecs.GroupNone, nil
	}
	g, ok := groupNames[name]
	if !ok {
		return ecs.GroupNone, fmt.Errorf("unknown collision group %q", name)
	}
	return g, nil
}

// BuildTemplates converts the parsed entities config into a template
// registry of component factories.
func BuildTemplates(cfg *EntitiesConfig) (*ecs.TemplateRegistry, error) {
	reg := ecs.NewTemplateRegistry()
	for key, tpl := range cfg.Templates {
		factories := []ecs.ComponentFactory{ecs.WithPosition()}

		if tpl.Body != nil {
			group, err := groupByName(tpl.Body.Group)
			if err != nil {
				return nil, fmt.Errorf("template %q: %w", key, err)
			}
			factories = append(factories, ecs.WithBody(ecs.Body{
				W:       tpl.Body.W,
				H:       tpl.Body.H,
				Bounce:  tpl.Body.Bounce,
				Group:   group,
				Trigger: tpl.Body.Trigger,
			}))
		}
		if tpl.Mortal != nil {
			factories = append(factories, ecs.WithMortal(tpl.Mortal.HP))
		}
		if tpl.Hazard != nil {
			factories = append(factories, ecs.WithHazard(tpl.Hazard.Damage, tpl.Hazard.OneShot))
		}
		if tpl.Sprite != nil {
			factories = append(factories, ecs.WithSprite(tpl.Sprite.Frame))
		}
		if tpl.Anim != nil {
			factories = append(factories, ecs.WithAnimation(tpl.Anim.Clips, tpl.Anim.Delay))
		}
		if tpl.TTL != nil {
			factories = append(factories, ecs.WithTTL(tpl.TTL.Seconds))
		}
		if tpl.Behavior != nil {
			factories = append(factories, ecs.WithBehavior(tpl.Behavior.Model))
		}

		reg.Register(key, factories...)
	}
	return reg, nil
}

// BuildGroupTable converts the collidable pair list into a group table.
func BuildGroupTable(cfg *EntitiesConfig) (*ecs.GroupTable, error) {
	table := ecs.NewGroupTable()
	for i, pair := range cfg.Collidable {
		a, err := groupByName(pair[0])
		if err != nil {
			return nil, fmt.Errorf("collidable[%d]: %w", i, err)
		}
		b, err := groupByName(pair[1])
		if err != nil {
			return nil, fmt.Errorf("collidable[%d]: %w", i, err)
		}
		table.Allow(a, b)
	}
	return table, nil
}

// BuildWeapons converts the parsed weapons config into a weapon registry.
func BuildWeapons(cfg *WeaponsConfig) *ecs.WeaponRegistry {
	reg := ecs.NewWeaponRegistry()
	for key, w := range cfg.Weapons {
		reg.Register(key, ecs.Weapon{
			Projectile:  w.Projectile,
			SpawnOffset: w.SpawnOffset,
			Speed:       w.Speed,
			Cooldown:    w.Cooldown,
		})
	}
	return reg
}
