package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LISSConsulting/gamelist/internal/game"
)

// formatGame renders one list line, e.g. "1. Chess - $9.99 (Wishlist)".
func (c *Controller) formatGame(index int, g game.Game) string {
	status := c.theme.statusStyle(g.Owned).Render(g.Status())
	return fmt.Sprintf("%d. %s - %s (%s)", index, g.Title, game.FormatPrice(g.Price), status)
}

func (c *Controller) viewGames() {
	if c.lib.Len() == 0 {
		c.say("Your game list is currently empty.")
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.theme.header.Render("--- Current Games ---"))
	for i, g := range c.lib.Games() {
		fmt.Fprintln(c.out, c.formatGame(i+1, g))
	}
	fmt.Fprintln(c.out, c.theme.rule.Render("----------------------"))
	fmt.Fprintln(c.out)
}

func (c *Controller) addGame() error {
	title, err := c.ask("Enter the game title: ")
	if err != nil {
		return err
	}
	priceText, err := c.ask("Enter the price (e.g., 59.99): ")
	if err != nil {
		return err
	}
	price, err := game.ParsePrice(priceText)
	if err != nil {
		c.fail("Invalid price. Game not added.")
		return nil
	}
	owned, err := c.askYesNo("Do you already own this game? (y/n): ")
	if err != nil {
		return err
	}

	c.lib.Add(game.Game{Title: title, Price: price, Owned: owned})
	c.ok("Game '%s' added.", title)
	return nil
}

func (c *Controller) deleteGame() error {
	title, err := c.ask("Enter the title of the game to delete: ")
	if err != nil {
		return err
	}
	removed, ok := c.lib.Remove(title)
	if !ok {
		c.fail("Game not found, nothing deleted.")
		return nil
	}
	c.ok("Game '%s' removed.", removed.Title)
	return nil
}

func (c *Controller) updateGame() error {
	title, err := c.ask("Enter the title of the game to update: ")
	if err != nil {
		return err
	}
	i, ok := c.lib.Find(title)
	if !ok {
		c.fail("Game not found, nothing updated.")
		return nil
	}

	g := c.lib.At(i)
	c.say("Current info: %s - %s - %s", g.Title, game.FormatPrice(g.Price), g.Status())

	target, err := c.ask("What would you like to update? (price/status/both): ")
	if err != nil {
		return err
	}
	target = strings.ToLower(strings.TrimSpace(target))
	if target != "price" && target != "status" && target != "both" {
		c.fail("Unknown update option, nothing changed.")
		return nil
	}

	if target == "price" || target == "both" {
		priceText, err := c.ask("Enter the new price: ")
		if err != nil {
			return err
		}
		price, err := game.ParsePrice(priceText)
		if err != nil {
			c.fail("Invalid price. Keeping old price.")
		} else if errors.Is(c.lib.SetPrice(i, price), game.ErrNegativePrice) {
			c.fail("Price cannot be negative. Keeping old price.")
		}
	}

	if target == "status" || target == "both" {
		owned, err := c.askYesNo("Do you own this game now? (y/n): ")
		if err != nil {
			return err
		}
		c.lib.SetOwned(i, owned)
	}

	c.ok("Game updated.")
	return nil
}

func (c *Controller) showBudget() error {
	if c.lib.Len() == 0 {
		c.say("No games in the list to analyze.")
		return nil
	}

	budgetText, err := c.ask("Enter your budget for games (e.g., 100): ")
	if err != nil {
		return err
	}
	budget, err := game.ParsePrice(budgetText)
	if err != nil {
		c.fail("Invalid number for budget.")
		return nil
	}

	games := c.lib.Games()
	all := game.TotalCost(games, false)
	wishlist := game.WishlistTotal(games)

	c.say("Total cost of ALL games: %s", game.FormatPrice(all))
	c.say("Total cost of WISHLIST (not owned) games: %s", game.FormatPrice(wishlist))
	c.say("Your budget: %s", game.FormatPrice(budget))

	verdict := game.Classify(wishlist, budget)
	if verdict == game.Affordable {
		c.ok("%s", verdict.Message())
	} else {
		c.fail(verdict.Message())
	}
	return nil
}
