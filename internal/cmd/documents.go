package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/api"
	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
)

var documentsCmd = &cobra.Command{
	Use:     "documents",
	Aliases: []string{"docs"},
	Short:   "Handle document requests",
	Long: `Admins request documents from employees; employees fulfil the
requests by uploading files.

Examples:
  dayflow documents types
  dayflow documents pending
  dayflow documents fulfil <request-id> ./payslip.pdf
  dayflow documents request EMP-001 --type "ID Proof" --due 2026-09-30
  dayflow documents review <request-id> --approve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	docStatus      string
	docEmployee    string
	docLimit       int
	docType        string
	docDescription string
	docDue         string
	docApprove     bool
	docReject      bool
	docComments    string
)

var documentsTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List accepted document types",
	RunE:  runDocumentsTypes,
}

var documentsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List document requests waiting on you",
	RunE:  runDocumentsPending,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your document requests",
	RunE:  runDocumentsList,
}

var documentsFulfilCmd = &cobra.Command{
	Use:   "fulfil <request-id> <file>",
	Short: "Upload the requested document",
	Args:  cobra.ExactArgs(2),
	RunE:  runDocumentsFulfil,
}

var documentsRequestCmd = &cobra.Command{
	Use:   "request <employee-id>",
	Short: "Request a document from an employee (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsRequest,
}

var documentsAdminCmd = &cobra.Command{
	Use:   "admin-list",
	Short: "List document requests across employees (admin)",
	RunE:  runDocumentsAdminList,
}

var documentsEmployeeCmd = &cobra.Command{
	Use:   "employee <employee-id>",
	Short: "List one employee's document requests (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsEmployee,
}

var documentsReviewCmd = &cobra.Command{
	Use:   "review <request-id>",
	Short: "Approve or reject an uploaded document (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsReview,
}

func init() {
	documentsListCmd.Flags().StringVar(&docStatus, "status", "", "filter by status")

	documentsRequestCmd.Flags().StringVar(&docType, "type", "", "document type (see 'dayflow documents types')")
	documentsRequestCmd.Flags().StringVar(&docDescription, "description", "", "what is needed and why")
	documentsRequestCmd.Flags().StringVar(&docDue, "due", "", "due date (YYYY-MM-DD)")

	documentsAdminCmd.Flags().StringVar(&docStatus, "status", "", "filter by status")
	documentsAdminCmd.Flags().StringVar(&docEmployee, "employee", "", "filter by employee ID")
	documentsAdminCmd.Flags().IntVar(&docLimit, "limit", 50, "maximum requests to show")

	documentsReviewCmd.Flags().BoolVar(&docApprove, "approve", false, "approve the upload")
	documentsReviewCmd.Flags().BoolVar(&docReject, "reject", false, "reject the upload")
	documentsReviewCmd.Flags().StringVar(&docComments, "comment", "", "review comment")

	documentsCmd.AddCommand(documentsTypesCmd)
	documentsCmd.AddCommand(documentsPendingCmd)
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsFulfilCmd)
	documentsCmd.AddCommand(documentsRequestCmd)
	documentsCmd.AddCommand(documentsAdminCmd)
	documentsCmd.AddCommand(documentsEmployeeCmd)
	documentsCmd.AddCommand(documentsReviewCmd)

	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsTypes(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	types, err := app.Client.DocumentTypes(cmd.Context())
	if err != nil {
		return err
	}
	for _, t := range types {
		fmt.Println(t)
	}
	return nil
}

func runDocumentsPending(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.PendingDocumentRequests(cmd.Context())
	if err != nil {
		return err
	}

	if len(resp.Requests) == 0 {
		fmt.Println("Nothing waiting on you.")
		return nil
	}
	return printDocumentRequests(resp.Requests, false)
}

func runDocumentsList(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	resp, err := app.Client.AllDocumentRequests(cmd.Context(), docStatus)
	if err != nil {
		return err
	}

	if len(resp.Requests) == 0 {
		fmt.Println("No document requests.")
		return nil
	}
	return printDocumentRequests(resp.Requests, false)
}

func runDocumentsFulfil(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleEmployee); err != nil {
		return err
	}

	file, err := os.Open(args[1])
	if err != nil {
		return dferrors.Wrap(dferrors.ErrCodeFileNotFound, "could not open document", err)
	}
	defer file.Close()

	resp, err := app.Client.UploadRequestedDocument(cmd.Context(), args[0], filepath.Base(args[1]), file)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runDocumentsRequest(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	if docType == "" {
		return dferrors.NewInputRequiredError("type")
	}

	resp, err := app.Client.RequestDocument(cmd.Context(), args[0], docType, docDescription, docDue)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func runDocumentsAdminList(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.AdminDocumentRequests(cmd.Context(), docStatus, docEmployee, docLimit)
	if err != nil {
		return err
	}

	if len(resp.Requests) == 0 {
		fmt.Println("No document requests.")
		return nil
	}
	return printDocumentRequests(resp.Requests, true)
}

func runDocumentsEmployee(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	resp, err := app.Client.EmployeeDocuments(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(resp.Requests) == 0 {
		fmt.Println("No document requests for this employee.")
		return nil
	}
	return printDocumentRequests(resp.Requests, false)
}

func runDocumentsReview(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}
	if err := app.requireRole(authz.RoleAdmin); err != nil {
		return err
	}

	action, err := reviewAction(docApprove, docReject)
	if err != nil {
		return err
	}

	resp, err := app.Client.ReviewDocument(cmd.Context(), args[0], action, docComments)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func printDocumentRequests(requests []api.DocumentRequest, withEmployee bool) error {
	w := newTable()
	if withEmployee {
		fmt.Fprintln(w, "ID\tEmployee\tType\tDue\tStatus")
	} else {
		fmt.Fprintln(w, "ID\tType\tDue\tStatus")
	}
	for _, r := range requests {
		if withEmployee {
			name := r.EmployeeName
			if name == "" {
				name = r.EmployeeID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				r.RequestID, name, r.DocumentType, orDash(r.DueDate), statusBadge(r.Status))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.RequestID, r.DocumentType, orDash(r.DueDate), statusBadge(r.Status))
		}
	}
	return w.Flush()
}
