package commands

import (
	"fmt"
	"os"
	"path/filepath"

	v1 "github.com/MGTheTrain/card-wallet/internal/api/rest/v1"

	"github.com/spf13/cobra"
)

// CardCommandHandler encapsulates logic for managing cards via CLI.
type CardCommandHandler struct {
	load DependencyLoader
}

// NewCardCommandHandler returns a CardCommandHandler operating on the dependencies built by load
func NewCardCommandHandler(load DependencyLoader) *CardCommandHandler {
	return &CardCommandHandler{load: load}
}

// ListCmd prints every card as JSON
func (commandHandler *CardCommandHandler) ListCmd(cmd *cobra.Command, _ []string) error {
	deps, err := commandHandler.load(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	cardList, err := deps.CardMetadata.List(cmd.Context())
	if err != nil {
		return err
	}

	listResponse := []v1.CardResponse{}
	for _, card := range cardList {
		listResponse = append(listResponse, v1.NewCardResponse(card))
	}
	return writeJSON(cmd.OutOrStdout(), listResponse)
}

// AddCmd creates a card from a local image file and prints it as JSON
func (commandHandler *CardCommandHandler) AddCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	barcode, err := cmd.Flags().GetString("barcode")
	if err != nil {
		return fmt.Errorf("invalid barcode flag: %w", err)
	}
	imagePath, err := cmd.Flags().GetString("image")
	if err != nil {
		return fmt.Errorf("invalid image flag: %w", err)
	}

	file, err := os.Open(filepath.Clean(imagePath))
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	deps, err := commandHandler.load(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	card, err := deps.CardUpload.Upload(cmd.Context(), name, barcode, filepath.Base(imagePath), file)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), v1.NewCardResponse(card))
}

// DeleteCmd deletes the card with the given id
func (commandHandler *CardCommandHandler) DeleteCmd(cmd *cobra.Command, args []string) error {
	deps, err := commandHandler.load(cmd.Context())
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := deps.CardMetadata.DeleteByID(cmd.Context(), args[0]); err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), v1.StatusResponse{Status: "deleted"})
}

// InitCardCommands registers the cards command group
func InitCardCommands(rootCmd *cobra.Command, load DependencyLoader) error {
	handler := NewCardCommandHandler(load)

	var cardsCmd = &cobra.Command{
		Use:   "cards",
		Short: "Manage cards",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all cards",
		Args:  cobra.NoArgs,
		RunE:  handler.ListCmd,
	}
	cardsCmd.AddCommand(listCmd)

	var addCmd = &cobra.Command{
		Use:   "add",
		Short: "Create a card from an image file",
		Args:  cobra.NoArgs,
		RunE:  handler.AddCmd,
	}
	addCmd.Flags().StringP("name", "", "", "Card name")
	addCmd.Flags().StringP("barcode", "", "", "Card barcode")
	addCmd.Flags().StringP("image", "", "", "Path to the card image")
	for _, flag := range []string{"name", "barcode", "image"} {
		if err := addCmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark %s flag required: %w", flag, err)
		}
	}
	cardsCmd.AddCommand(addCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.DeleteCmd,
	}
	cardsCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(cardsCmd)
	return nil
}
