package cmdname

// windowsBuiltins holds cmd.exe built-ins and stock Windows utilities.
var windowsBuiltins = []string{
	"cscript", "wscript", "active", "add", "append", "arp", "assign", "assoc", "at", "atmadm",
	"attach-vdisk", "attrib", "attributes", "auditpol", "autochk", "autoconv", "autofmt", "automount",
	"bcdboot", "bcdedit", "bdehdcfg", "begin", "bitsadmin", "bootcfg", "break", "cacls", "call", "cd",
	"certreq", "certutil", "change", "chcp", "chdir", "chglogon", "chgport", "chgusr", "chkdsk",
	"chkntfs", "choice", "cipher", "clean", "cleanmgr", "clip", "cls", "cmd", "cmdkey", "cmstp",
	"color", "comp", "compact", "convert", "copy", "cprofile", "create", "date", "dcgpofix", "defrag",
	"del", "delete", "detach", "detail", "dfsdiag", "dfsrmig", "diantz", "dir", "diskcomp",
	"diskcopy", "diskpart", "diskperf", "diskraid", "diskshadow", "dispdiag", "dnscmd", "doskey",
	"driverquery", "echo", "edit", "endlocal", "end", "erase", "eventcreate", "eventquery",
	"eventtriggers", "Evntcmd", "exec", "exit", "expand", "expose", "extend", "extract", "fc",
	"filesystems", "find", "findstr", "finger", "flattemp", "fondue", "for", "forfiles", "format",
	"freedisk", "fsutil", "ftp", "ftype", "fveupdate", "getmac", "gettype", "goto", "gpfixup",
	"gpresult", "gpt", "gpupdate", "graftabl", "help", "helpctr", "hostname", "icacls", "if",
	"import", "inactive", "inuse", "ipconfig", "ipxroute", "irftp", "jetpack", "klist", "ksetup",
	"ktmutil", "ktpass", "label", "list", "load", "lodctr", "logman", "logoff", "lpq", "lpr",
	"macfile", "makecab", "manage", "mapadmin", "md", "merge", "mkdir", "mklink", "mmc", "mode",
	"more", "mount", "mountvol", "move", "mqbkup", "mqsvc", "mqtgsvc", "msdt", "msg", "msiexec",
	"msinfo32", "mstsc", "nbtstat", "netcfg", "net", "netsh", "netstat", "nfsadmin", "nfsshare",
	"nfsstat", "nlbmgr", "nslookup", "ntbackup", "ntcmdprompt", "ntfrsutl", "offline", "online",
	"openfiles", "pagefileconfig", "path", "pathping", "pause", "pbadmin", "pentnt", "perfmon",
	"ping", "pnpunattend", "pnputil", "popd", "powershell", "print", "prncnfg", "prndrvr", "prnjobs",
	"prnmngr", "prnport", "prnqctl", "prompt", "pubprn", "pushd", "pushprinterconnections",
	"pwlauncher", "qappsrv", "qprocess", "query", "quser", "qwinsta", "rcp", "rd", "rdpsign",
	"recover", "refsutil", "reg", "regini", "regsvr32", "relog", "rem", "remove", "ren", "rename",
	"repair", "replace", "rescan", "reset", "retain", "revert", "rexec", "risetup", "rmdir",
	"robocopy", "route", "rpcinfo", "rpcping", "rsh", "rundll32", "rwinsta", "san", "sc", "schtasks",
	"scwcmd", "secedit", "select", "serverceipoptin", "servermanagercmd", "serverweroptin", "set",
	"setlocal", "setx", "sfc", "shadow", "shift", "showmount", "shrink", "shutdown", "simulate",
	"sort", "start", "subcommand", "subst", "sxstrace", "sysocmgr", "systeminfo", "takeown",
	"tapicfg", "taskkill", "tasklist", "tcmsetup", "telnet", "tftp", "time", "timeout", "title",
	"tlntadmn", "tpmtool", "tpmvscmgr", "tracerpt", "tracert", "tree", "tscon", "tsdiscon", "tsecimp",
	"tskill", "tsprof", "type", "typeperf", "tzutil", "unexpose", "uniqueid", "unlodctr", "ver",
	"verifier", "verify", "vol", "vssadmin", "waitfor", "wbadmin", "wdsutil", "wecutil", "wevtutil",
	"where", "whoami", "winnt", "winnt32", "winpop", "winrs", "winsat", "wmic", "writer", "xcopy",
}

// powershellCmdlets holds frequently used PowerShell cmdlets.
var powershellCmdlets = []string{
	"Get-ChildItem", "Invoke-Command", "Import-Module", "Export-Csv", "Write-Host", "Get-WmiObject",
	"Get-Content", "Get-Date", "Invoke-WebRequest", "Start-Process", "Copy-Item",
	"Set-ExecutionPolicy", "Out-File", "Where-Object", "Import-Csv", "Send-MailMessage", "New-Object",
	"Select-String", "Remove-Item", "Select-Object", "Test-Path", "Invoke-RestMethod",
	"Install-Package", "ForEach-Object", "Write-Output", "Get-Process", "Get-Service", "Format-Table",
	"Test-Connection", "New-Item", "Get-EventLog", "Get-WinEvent", "Install-Module",
	"Enter-PSSession", "Get-Credential", "Read-Host", "Get-AppxPackage", "Get-Acl", "Get-Help",
	"Start-Job", "Add-PSSnapin", "New-PSSession", "Invoke-Expression", "Add-Content", "New-PSDrive",
	"Move-Item", "Get-Item", "Compare-Object", "Sort-Object", "Test-NetConnection", "Set-Acl",
	"Set-Content", "Start-Transcript", "Get-HotFix", "Get-ItemProperty", "Add-Member",
	"Remove-AppxPackage", "Rename-Item", "Add-Type", "Get-Member", "ConvertTo-SecureString",
	"New-SelfSignedCertificate", "Start-Sleep", "Restart-Computer", "Out-GridView", "Format-List",
	"Set-ItemProperty", "Measure-Object", "Split-Path", "Get-Counter", "Get-CimInstance",
	"Add-Computer", "Add-AppxPackage", "ConvertTo-Html", "Import-StartLayout", "Set-Location",
	"Get-NetAdapter", "Export-StartLayout", "Enable-PSRemoting", "Get-Command", "Get-ExecutionPolicy",
	"Join-Path", "Import-PSSession", "Get-FileHash", "Write-Error", "Stop-Service", "Stop-Process",
	"Start-Service", "Unblock-File", "Get-Disk", "Get-Module", "ConvertTo-Json",
	"New-WebServiceProxy", "Reset-ComputerMachinePassword", "Get-ScheduledTask", "Write-EventLog",
	"Set-Service", "Out-String", "Get-Printer", "Out-Null", "Resolve-DnsName", "Get-WindowsUpdateLog",
	"Restart-Service", "Set-Variable", "Compress-Archive", "ConvertFrom-Json", "New-SmbShare",
	"Set-Item", "Update-Help", "Group-Object", "Start-BitsTransfer", "Get-Certificate",
	"Register-ScheduledTask", "Tee-Object", "Test-ComputerSecureChannel", "Measure-Command",
	"ConvertFrom-SecureString", "Get-Job", "Export-Clixml", "ConvertTo-Csv",
	"Remove-AppxProvisionedPackage", "New-ItemProperty", "Get-PhysicalDisk", "Set-TimeZone",
	"Get-Package", "Get-SmbShare", "Get-Variable", "Add-Printer", "Resolve-Path", "Select-Xml",
	"Get-Random", "Get-PSDrive", "Expand-Archive", "Receive-Job", "New-NetFirewallRule",
	"New-NetIPAddress", "Get-NetIPAddress", "Register-ObjectEvent", "Get-SmbConnection",
	"New-TimeSpan", "Enable-WindowsOptionalFeature", "Set-NetConnectionProfile",
	"New-ScheduledTaskTrigger", "Rename-Computer", "Get-Event", "Test-WSMan",
	"Get-AppxProvisionedPackage", "Wait-Process", "Wait-Job", "Write-Debug", "Import-Certificate",
	"New-EventLog", "Get-Host", "Invoke-WmiMethod", "Update-Script", "New-Service", "ConvertFrom-Csv",
	"Invoke-Item", "Enable-WSManCredSSP", "Get-Unique", "Find-Package", "Out-Host", "Format-Volume",
	"Format-Custom", "Get-SmbServerConfiguration", "Mount-DiskImage", "Clear-Host",
	"Start-DscConfiguration", "Get-SmbOpenFile", "Add-VpnConnection", "Set-DnsClientServerAddress",
	"Export-ModuleMember", "Get-PSSession", "Get-PSSnapin", "Get-NetConnectionProfile",
	"Get-NetFirewallRule", "Push-Location", "Get-Volume", "New-NetLbfoTeam", "Get-NetTCPConnection",
	"Stop-Computer", "Set-StrictMode", "Set-NetFirewallRule", "Add-AppxProvisionedPackage",
	"Enable-BitLocker", "Get-Location", "Set-NetIPInterface", "New-VirtualDisk", "Remove-PSSession",
	"Set-NetIPAddress", "Register-ScheduledJob", "Set-SmbServerConfiguration", "New-Partition",
	"Remove-PSDrive", "Remove-Variable", "Get-WindowsOptionalFeature", "Import-Clixml",
	"Import-PfxCertificate", "Uninstall-Package", "Set-AuthenticodeSignature", "Set-NetAdapter",
	"Set-Alias", "Set-WmiInstance", "Disable-WindowsOptionalFeature", "Update-Module",
	"New-LocalUser", "Mount-WindowsImage", "Get-ItemPropertyValue", "New-Alias", "New-JobTrigger",
	"Get-History", "New-CimSession", "Get-LocalGroup", "ConvertTo-Xml", "New-PSSessionOption",
	"Add-WindowsCapability", "New-Variable", "Convert-Path", "Get-LocalGroupMember",
	"Add-WindowsPackage", "Invoke-CimMethod", "ConvertFrom-String", "Export-Certificate",
	"Unregister-ScheduledTask", "ConvertFrom-StringData", "Install-PackageProvider", "Get-LocalUser",
	"Clear-Content", "Remove-Module", "Get-VpnConnection", "Export-PfxCertificate",
	"Get-NetIPConfiguration", "Export-WindowsDriver", "Grant-SmbShareAccess", "Initialize-Disk",
	"Get-NetIPInterface", "Get-PfxCertificate", "Invoke-Pester", "Add-OdbcDsn", "Format-Wide",
	"Get-Partition", "Set-Disk", "Get-ScheduledJob", "Get-PnpDevice", "Get-Tpm",
	"Disable-NetAdapterBinding", "Get-PSRepository", "Out-Default", "Add-PrinterDriver",
	"Set-WinUserLanguageList", "Get-ScheduledTaskInfo", "Enable-NetFirewallRule", "Out-Printer",
	"Add-PrinterPort", "Set-WinSystemLocale", "Find-Module", "Get-NetAdapterVmq", "Stop-Transcript",
	"Get-SmbSession", "Set-PSSessionConfiguration", "Add-MpPreference", "Set-SmbShare",
	"Set-VpnConnection", "Start-ScheduledTask", "Suspend-BitLocker", "Get-SmbShareAccess",
	"Set-PSDebug", "Get-StartApps", "Add-VpnConnectionRoute", "Get-VirtualDisk", "Write-Information",
	"New-ScheduledTask", "Set-Culture", "New-ScheduledTaskSettingsSet", "New-ScheduledTaskAction",
	"Set-Partition", "Clear-Variable", "Add-KdsRootKey", "Exit-PSSession", "Add-LocalGroupMember",
	"Set-LocalUser", "Remove-Computer", "New-NetNat", "Set-SmbClientConfiguration",
	"Set-ScheduledTask", "Remove-ItemProperty", "Set-Printer", "Set-PhysicalDisk", "Set-Date",
	"Repair-WindowsImage", "Set-NetAdapterVmq", "Remove-WmiObject", "New-NetRoute", "Optimize-Volume",
	"New-Volume", "New-StoragePool", "New-SmbMapping", "Set-DscLocalConfigurationManager",
	"New-ScheduledTaskPrincipal", "Get-Culture", "Set-PSRepository", "Set-NetFirewallProfile",
	"Get-Alias", "Get-DnsClientServerAddress", "Set-MpPreference", "Save-Module", "Resize-Partition",
	"Repair-Volume", "Remove-Printer", "Remove-PhysicalDisk", "Remove-NetIPAddress",
	"Register-PSRepository", "Get-WindowsCapability", "Get-BitLockerVolume", "Get-Clipboard",
	"Get-ComputerInfo", "Get-InitiatorPort", "Get-BitsTransfer", "Get-AuthenticodeSignature",
	"Get-AppvClientPackage", "Set-WSManQuickConfig", "New-Guid", "Get-StorageJob", "Uninstall-Module",
	"Get-InstalledModule", "Confirm-SecureBootUEFI", "Set-Clipboard", "Get-TlsCipherSuite",
	"Clear-Disk",
}

// unixUtilities holds POSIX shell built-ins and core utilities.
var unixUtilities = []string{
	"cd", "ls", "pwd", "mkdir", "rmdir", "rm", "cp", "mv", "touch", "chmod", "chown", "chgrp", "ln",
	"cat", "less", "more", "grep", "fgrep", "egrep", "sed", "awk", "sort", "uniq", "head", "tail",
	"zcat", "zip", "gzip", "gunzip", "bzip2", "bunzip2", "bzcat", "tar", "untar", "xz", "unxz",
	"uncompress", "unzip", "unalias", "alias", "man", "exit", "shutdown", "sudo", "htop", "top",
	"apt", "yum", "pacman", "brew", "echo", "ps", "kill", "ping", "history", "passwd", "which",
	"where", "shred", "type", "whoami", "whatis", "curl", "wget", "ssh",
}

// commonCLIs holds third-party tools found on most developer machines.
var commonCLIs = []string{
	"vim", "vi", "neofetch", "python", "python3", "pip", "node", "npm", "heroku", "vercel", "vc",
	"twitterminal", "screen", "pm2", "nano", "emacs",
}
