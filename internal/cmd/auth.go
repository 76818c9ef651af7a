package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/dayflowhq/dayflow/internal/authz"
	dferrors "github.com/dayflowhq/dayflow/internal/errors"
	"github.com/dayflowhq/dayflow/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Log in, sign up, and inspect your session",
	Long: `Manage your Dayflow session.

Examples:
  # Log in interactively
  dayflow auth login

  # Log in as a manager
  dayflow auth login --role manager --email lead@example.com

  # Create an account, then verify the emailed code
  dayflow auth signup
  dayflow auth verify --email you@example.com --otp 482913

  # Inspect the current session
  dayflow auth status

  # Log out
  dayflow auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	loginEmail    string
	loginPassword string
	loginRole     string

	signupEmail      string
	signupPassword   string
	signupName       string
	signupEmployeeID string
	signupAdmin      bool

	verifyEmail string
	verifyOTP   string
	resendEmail string
)

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Dayflow",
	Long: `Authenticate against the Dayflow backend and store the session
locally. Missing email or password is asked for interactively.
Managers authenticate against a separate directory; pass --role manager.`,
	RunE: runAuthLogin,
}

var authSignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a Dayflow account",
	Long: `Register a new account. The backend emails a one-time code;
confirm it with 'dayflow auth verify' to finish.

Passwords need at least 8 characters including an uppercase letter, a
lowercase letter, a digit, and a special character.`,
	RunE: runAuthSignup,
}

var authVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the emailed one-time code",
	RunE:  runAuthVerify,
}

var authResendCmd = &cobra.Command{
	Use:   "resend",
	Short: "Resend the verification code",
	RunE:  runAuthResend,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE:  runAuthLogout,
}

var authStatusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show the current session",
	Long: `Show who is logged in, their role, and what the stored token
claims about itself. The token is decoded locally without verification;
whether it is still accepted is the server's call.`,
	RunE: runAuthStatus,
}

func init() {
	authLoginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	authLoginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prefer the interactive prompt)")
	authLoginCmd.Flags().StringVar(&loginRole, "role", "employee", "login as role: employee, manager, admin")

	authSignupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	authSignupCmd.Flags().StringVar(&signupPassword, "password", "", "account password (prefer the interactive prompt)")
	authSignupCmd.Flags().StringVar(&signupName, "name", "", "full name")
	authSignupCmd.Flags().StringVar(&signupEmployeeID, "employee-id", "", "employee ID assigned by HR")
	authSignupCmd.Flags().BoolVar(&signupAdmin, "admin", false, "register an admin account")

	authVerifyCmd.Flags().StringVar(&verifyEmail, "email", "", "account email")
	authVerifyCmd.Flags().StringVar(&verifyOTP, "otp", "", "the emailed one-time code")

	authResendCmd.Flags().StringVar(&resendEmail, "email", "", "account email")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authSignupCmd)
	authCmd.AddCommand(authVerifyCmd)
	authCmd.AddCommand(authResendCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	role, err := authz.ParseRole(loginRole)
	if err != nil {
		return dferrors.New(dferrors.ErrCodeRoleUnknown, err.Error()).
			WithSuggestion("Valid roles are employee, manager, admin")
	}

	if loginEmail == "" || loginPassword == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&loginEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&loginPassword),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	sess, err := app.Session.Login(cmd.Context(), loginEmail, loginPassword, role)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", sess.User.Name, sess.Role)
	return nil
}

func runAuthSignup(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	if signupEmail == "" || signupPassword == "" || signupName == "" || signupEmployeeID == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&signupName),
			huh.NewInput().
				Title("Email").
				Value(&signupEmail),
			huh.NewInput().
				Title("Employee ID").
				Value(&signupEmployeeID),
			huh.NewInput().
				Title("Password").
				Description("8+ characters with upper, lower, digit, and special").
				EchoMode(huh.EchoModePassword).
				Value(&signupPassword),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	msg, err := app.Session.Signup(cmd.Context(), session.SignupParams{
		Email:      signupEmail,
		Password:   signupPassword,
		Name:       signupName,
		EmployeeID: signupEmployeeID,
		Admin:      signupAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Println(msg)
	fmt.Println("Confirm the emailed code with 'dayflow auth verify'.")
	return nil
}

func runAuthVerify(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	if verifyEmail == "" || verifyOTP == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&verifyEmail),
			huh.NewInput().
				Title("One-time code").
				Value(&verifyOTP),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	sess, err := app.Session.VerifyOTP(cmd.Context(), verifyEmail, verifyOTP)
	if err != nil {
		return err
	}

	fmt.Printf("Verified. Logged in as %s (%s)\n", sess.User.Name, sess.Role)
	return nil
}

func runAuthResend(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	if resendEmail == "" {
		return dferrors.NewInputRequiredError("email")
	}

	msg, err := app.Session.ResendOTP(cmd.Context(), resendEmail)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	app.Session.Logout()
	fmt.Println("Logged out.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	app, err := getApp()
	if err != nil {
		return err
	}

	sess := app.Session.Current()
	if sess == nil {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("User:  %s <%s>\n", sess.User.Name, sess.User.Email)
	fmt.Printf("Role:  %s\n", sess.Role)
	if sess.User.Department != "" {
		fmt.Printf("Dept:  %s\n", sess.User.Department)
	}

	describeToken(sess.Token)
	return nil
}

// describeToken prints what the bearer token claims about itself. The
// signature is not checked; the server remains the authority on
// validity.
func describeToken(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		fmt.Println("Token: opaque (not a decodable JWT)")
		return
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		remaining := time.Until(exp.Time).Round(time.Minute)
		if remaining > 0 {
			fmt.Printf("Token: expires %s (%s from now, unverified)\n",
				exp.Time.Format(time.RFC3339), remaining)
		} else {
			fmt.Printf("Token: expired %s (unverified)\n", exp.Time.Format(time.RFC3339))
		}
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fmt.Printf("Subject: %s\n", sub)
	}
}
