package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/views"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your profile",
	Long: `View your profile, update personal details, manage uploaded
documents, and check your salary structure.

Examples:
  dayflow profile view
  dayflow profile update --phone "+91 98765 43210"
  dayflow profile picture ./me.jpg
  dayflow profile upload --type "ID Proof" ./passport.pdf
  dayflow profile salary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	profilePhone   string
	profileAddress string
	profileJob     string
	uploadDocType  string
)

var profileViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show your profile",
	RunE:  runProfileView,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE:  runProfileUpdate,
}

var profilePictureCmd = &cobra.Command{
	Use:   "picture <file>",
	Short: "Upload a profile picture",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilePicture,
}

var profileUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document to your profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUpload,
}

var profileDeleteDocCmd = &cobra.Command{
	Use:   "delete-doc <index>",
	Short: "Delete an uploaded document by its list index",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDeleteDoc,
}

var profileSalaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Show your salary structure",
	RunE:  runProfileSalary,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profilePhone, "phone", "", "phone number")
	profileUpdateCmd.Flags().StringVar(&profileAddress, "address", "", "postal address")
	profileUpdateCmd.Flags().StringVar(&profileJob, "job-title", "", "job title")

	profileUploadCmd.Flags().StringVar(&uploadDocType, "type", "", "document type (see 'dayflow documents types')")

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePictureCmd)
	profileCmd.AddCommand(profileUploadCmd)
	profileCmd.AddCommand(profileDeleteDocCmd)
	profileCmd.AddCommand(profileSalaryCmd)

	rootCmd.AddCommand(profileCmd)
}

func runProfileView(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	p, err := app.Client.Profile(cmd.Context())
	if err != nil {
		return err
	}

	heading(p.Name)
	w := newTable()
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	fmt.Fprintf(w, "Employee ID\t%s\n", orDash(p.EmployeeID))
	fmt.Fprintf(w, "Department\t%s\n", orDash(p.Department))
	fmt.Fprintf(w, "Job title\t%s\n", orDash(p.JobTitle))
	fmt.Fprintf(w, "Phone\t%s\n", orDash(p.Phone))
	fmt.Fprintf(w, "Address\t%s\n", orDash(p.Address))
	if err := w.Flush(); err != nil {
		return err
	}

	if len(p.Documents) > 0 {
		fmt.Println()
		heading("Documents")
		dw := newTable()
		fmt.Fprintln(dw, "#\tType\tFile\tUploaded")
		for i, doc := range p.Documents {
			fmt.Fprintf(dw, "%d\t%s\t%s\t%s\n", i, doc.DocumentType, doc.FileName, orDash(doc.UploadedAt))
		}
		return dw.Flush()
	}
	return nil
}

func runProfileUpdate(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	fields := map[string]any{}
	if profilePhone != "" {
		fields["phone"] = profilePhone
	}
	if profileAddress != "" {
		fields["address"] = profileAddress
	}
	if profileJob != "" {
		fields["job_title"] = profileJob
	}
	if len(fields) == 0 {
		return dferrors.New(dferrors.ErrCodeInputRequired, "nothing to update").
			WithSuggestion("Pass at least one of --phone, --address, --job-title")
	}

	resp, err := app.Client.UpdateProfile(cmd.Context(), fields)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runProfilePicture(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeFileNotFound, "could not open picture", err)
	}
	defer file.Close()

	resp, err := app.Client.UploadProfilePicture(cmd.Context(), filepath.Base(args[0]), file)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runProfileUpload(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	if uploadDocType == "" {
		return dferrors.NewInputRequiredError("type")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeFileNotFound, "could not open document", err)
	}
	defer file.Close()

	resp, err := app.Client.UploadDocument(cmd.Context(), uploadDocType, filepath.Base(args[0]), file)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runProfileDeleteDoc(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return dferrors.New(dferrors.ErrCodeInputInvalid, "index must be a non-negative number").
			WithSuggestion("Indexes are shown by 'dayflow profile view'")
	}

	resp, err := app.Client.DeleteDocument(cmd.Context(), index)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runProfileSalary(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	salary, err := app.Client.MySalary(cmd.Context())
	if err != nil {
		return err
	}

	heading("Salary structure")
	w := newTable()
	fmt.Fprintf(w, "Basic\t%d\n", salary.Basic)
	fmt.Fprintf(w, "HRA\t%d\n", salary.HRA)
	fmt.Fprintf(w, "Allowances\t%d\n", salary.Allowances)
	fmt.Fprintf(w, "Deductions\t%d\n", salary.Deductions)
	fmt.Fprintf(w, "Net\t%d\n", views.NetSalary(*salary))
	return w.Flush()
}
